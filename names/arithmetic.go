package names

import "golang.org/x/exp/constraints"

// Mod returns n modulo m, wrapping negative values forward so the result is always in [0,m).
func Mod[T constraints.Integer](n, m T) T {
	return ((n % m) + m) % m
}

// Normalize maps any semitone count onto a pitch class in [0,12).
func Normalize(n int) int {
	return Mod(n, 12)
}

// Add transposes a pitch class by an interval's semitone count.
func Add(pitchClass, semitones int) int {
	return Normalize(pitchClass + semitones)
}
