package names

import (
	"fmt"
	"unicode/utf8"

	"github.com/gruntwork-io/go-commons/errors"
)

var (
	// SharpNoteNames spells every black key as a sharp.
	SharpNoteNames = []string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}

	// FlatNoteNames spells every black key as a flat.
	FlatNoteNames = []string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}

	// NoteNames uses the most common spelling of each pitch class.
	NoteNames = []string{"C", "C♯", "D", "E♭", "E", "F", "F♯", "G", "A♭", "A", "B♭", "B"}
)

// Spelling selects a note name table.
type Spelling int

const (
	DefaultSpelling Spelling = iota
	SharpSpelling
	FlatSpelling
)

// Names returns the note name table for the spelling.
func (s Spelling) Names() []string {
	switch s {
	case SharpSpelling:
		return SharpNoteNames
	case FlatSpelling:
		return FlatNoteNames
	}
	return NoteNames
}

// ParseSpelling accepts "default", "sharp" or "flat".
func ParseSpelling(name string) (Spelling, error) {
	switch name {
	case "", "default":
		return DefaultSpelling, nil
	case "sharp":
		return SharpSpelling, nil
	case "flat":
		return FlatSpelling, nil
	}
	return 0, errors.WithStackTrace(fmt.Errorf("unknown spelling %q", name))
}

// UnknownPitchNameError is returned when a pitch or pitch class name cannot be parsed.
type UnknownPitchNameError struct {
	Name string
}

func (err UnknownPitchNameError) Error() string {
	return fmt.Sprintf("no pitch named %q", err.Name)
}

// IsUnknownPitchName reports whether err is, or wraps, an UnknownPitchNameError.
func IsUnknownPitchName(err error) bool {
	_, ok := errors.Unwrap(err).(UnknownPitchNameError)
	return ok
}

// PitchClassName returns the display name of a pitch class.
func PitchClassName(n int) string {
	return NoteNames[Normalize(n)]
}

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

var accidentals = map[rune]int{
	'#': 1, '♯': 1, 'x': 2, '𝄪': 2,
	'b': -1, '♭': -1, '𝄫': -2,
}

// ParsePitchClass parses a note letter followed by any accidentals, such as
// "C", "F♯", "Bb" or "G𝄪", and returns its pitch class.
func ParsePitchClass(name string) (int, error) {
	n, rest, err := parseNote(name)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, unknownPitch(name)
	}
	return Normalize(n), nil
}

// parseNote reads a letter and its accidentals from the front of name. The
// result is not normalized, so B♯ is 12 and C♭ is -1.
func parseNote(name string) (int, string, error) {
	if name == "" {
		return 0, "", unknownPitch(name)
	}
	n, ok := letterSemitones[name[0]]
	if !ok {
		return 0, "", unknownPitch(name)
	}
	rest := name[1:]
	for rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		delta, ok := accidentals[r]
		if !ok {
			break
		}
		n += delta
		rest = rest[size:]
	}
	return n, rest, nil
}

func unknownPitch(name string) error {
	return errors.WithStackTrace(UnknownPitchNameError{Name: name})
}
