package interval

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// The tritone sits at offset 6 in both tables.
const tritone = 6

// ShorthandNames holds the canonical short name of each simple interval, indexed by semitones.
var ShorthandNames = []string{
	"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8",
}

// LongNames holds the long name of each simple interval, indexed by semitones.
var LongNames = []string{
	"Unison",
	"Minor 2nd",
	"Major 2nd",
	"Minor 3rd",
	"Major 3rd",
	"Perfect 4th",
	"Tritone",
	"Perfect 5th",
	"Minor 6th",
	"Major 6th",
	"Minor 7th",
	"Major 7th",
	"Octave",
}

type tableEntry struct {
	degree  int
	quality Quality
}

// entries is indexed by semitones. The tritone entry is unused.
var entries = [...]tableEntry{
	{1, Perfect},
	{2, Minor},
	{2, Major},
	{3, Minor},
	{3, Major},
	{4, Perfect},
	{},
	{5, Perfect},
	{6, Minor},
	{6, Major},
	{7, Minor},
	{7, Major},
	{8, Perfect},
}

// lookupName returns the semitone offset of an exact shorthand or long name.
func lookupName(name string) (int, bool) {
	if i := slices.Index(ShorthandNames, name); i >= 0 {
		return i, true
	}
	if i := slices.Index(LongNames, name); i >= 0 {
		return i, true
	}
	return -1, false
}

// lookupShorthand finds the offset of the synthesized shorthand for q and degree.
func lookupShorthand(q Quality, degree int) (int, bool) {
	i := slices.Index(ShorthandNames, fmt.Sprintf("%s%d", q, degree))
	return i, i >= 0
}

// tableInterval builds the interval stored at offset s.
func tableInterval(s int) Interval {
	if s == tritone {
		return Interval{name: ShorthandNames[s], semitones: s}
	}
	e := entries[s]
	return Interval{
		name:      ShorthandNames[s],
		degree:    e.degree,
		quality:   e.quality,
		diatonic:  true,
		semitones: s,
	}
}
