package pitch

import (
	"github.com/robmorgan/theory/interval"
	"github.com/robmorgan/theory/names"
)

// PitchClass is a pitch modulo the octave. Its semitones are always in [0,12).
type PitchClass struct {
	name      string
	semitones int
}

// PitchClassFromSemitones normalizes any semitone count onto a pitch class.
func PitchClassFromSemitones(semitones int) PitchClass {
	semitones = names.Normalize(semitones)
	return PitchClass{name: names.NoteNames[semitones], semitones: semitones}
}

// ParsePitchClass parses a name such as "E♭" or "F#". The result carries the
// canonical name for its pitch class, not the spelling it was parsed from.
func ParsePitchClass(name string) (PitchClass, error) {
	semitones, err := names.ParsePitchClass(name)
	if err != nil {
		return PitchClass{}, err
	}
	return PitchClassFromSemitones(semitones), nil
}

func (pc PitchClass) Name() string {
	return pc.name
}

func (pc PitchClass) Semitones() int {
	return pc.semitones
}

func (pc PitchClass) String() string {
	return pc.name
}

// SpelledName returns the name of the pitch class in the given spelling.
func (pc PitchClass) SpelledName(spelling names.Spelling) string {
	return spelling.Names()[pc.semitones]
}

// Add transposes the pitch class by an interval, wrapping at the octave.
func (pc PitchClass) Add(other interval.Interval) PitchClass {
	return PitchClassFromSemitones(names.Add(pc.semitones, other.Semitones()))
}

// ToPitch places the pitch class in an octave. Octave 0 starts at pitch number 0.
func (pc PitchClass) ToPitch(octave int) Pitch {
	return FromMidiNumber(pc.semitones + 12*octave)
}

// PitchClasses holds the twelve pitch classes starting from C.
var PitchClasses = func() []PitchClass {
	out := make([]PitchClass, 12)
	for i := range out {
		out[i] = PitchClassFromSemitones(i)
	}
	return out
}()
