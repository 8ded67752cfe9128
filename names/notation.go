package names

import (
	"strconv"
	"strings"
)

// octaveOf returns the scientific octave number of a MIDI-style pitch number. C4 is 60.
func octaveOf(midiNumber int) int {
	return (midiNumber-Normalize(midiNumber))/12 - 1
}

// ToScientificNotation formats a pitch number as, for example, "C4" or "E♭-1".
func ToScientificNotation(midiNumber int) string {
	return PitchClassName(midiNumber) + strconv.Itoa(octaveOf(midiNumber))
}

// FromScientificNotation parses names such as "A4", "C♯5" or "Bb-1".
// Accidentals may cross an octave boundary: B♯4 is 72 and C♭4 is 59.
func FromScientificNotation(name string) (int, error) {
	n, rest, err := parseNote(name)
	if err != nil {
		return 0, err
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, unknownPitch(name)
	}
	return n + 12*(octave+1), nil
}

// ToHelmholtzNotation formats a pitch number in Helmholtz notation: "C," is
// C1, "C" is C2, "c" is C3 and "c'" is C4.
func ToHelmholtzNotation(midiNumber int) string {
	name := PitchClassName(midiNumber)
	octave := octaveOf(midiNumber)
	if octave >= 3 {
		return strings.ToLower(name) + strings.Repeat("'", octave-3)
	}
	return name + strings.Repeat(",", 2-octave)
}

// FromHelmholtzNotation parses names such as "C,", "E♭", "g" or "a'".
// Upper case letters take commas, lower case letters take primes.
func FromHelmholtzNotation(name string) (int, error) {
	n, rest, err := parseNote(name)
	if err != nil {
		return 0, err
	}

	var octave int
	if name[0] >= 'a' {
		octave = 3
		for _, r := range rest {
			if r != '\'' && r != '′' {
				return 0, unknownPitch(name)
			}
			octave++
		}
	} else {
		octave = 2
		for _, r := range rest {
			if r != ',' {
				return 0, unknownPitch(name)
			}
			octave--
		}
	}
	return n + 12*(octave+1), nil
}
