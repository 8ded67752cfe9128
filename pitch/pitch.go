package pitch

import (
	"strings"

	"github.com/robmorgan/theory/interval"
	"github.com/robmorgan/theory/names"
)

// Pitch is an absolute pitch, numbered the way MIDI numbers notes. The number
// is not limited to the MIDI range.
type Pitch struct {
	name       string
	midiNumber int
}

// FromMidiNumber returns the pitch with the given number, named in scientific notation.
func FromMidiNumber(midiNumber int) Pitch {
	return Pitch{name: names.ToScientificNotation(midiNumber), midiNumber: midiNumber}
}

// Parse reads a pitch in scientific notation ("C4") when the name contains a
// digit, and in Helmholtz notation ("c'") otherwise. The pitch keeps the name
// it was parsed from.
func Parse(name string) (Pitch, error) {
	parse := names.FromHelmholtzNotation
	if strings.ContainsAny(name, "0123456789") {
		parse = names.FromScientificNotation
	}
	midiNumber, err := parse(name)
	if err != nil {
		return Pitch{}, err
	}
	return Pitch{name: name, midiNumber: midiNumber}, nil
}

func (p Pitch) Name() string {
	return p.name
}

func (p Pitch) MidiNumber() int {
	return p.midiNumber
}

func (p Pitch) String() string {
	return p.name
}

// Add returns the pitch an interval above p.
func (p Pitch) Add(other interval.Interval) Pitch {
	return FromMidiNumber(p.midiNumber + other.Semitones())
}

// TransposeBy is the same as Add.
func (p Pitch) TransposeBy(other interval.Interval) Pitch {
	return p.Add(other)
}

func (p Pitch) PitchClass() PitchClass {
	return PitchClassFromSemitones(p.midiNumber)
}

// Helmholtz returns the pitch in Helmholtz notation.
func (p Pitch) Helmholtz() string {
	return names.ToHelmholtzNotation(p.midiNumber)
}

// Pitches holds the pitches numbered 0 through 11.
var Pitches = func() []Pitch {
	out := make([]Pitch, 12)
	for i := range out {
		out[i] = FromMidiNumber(i)
	}
	return out
}()
