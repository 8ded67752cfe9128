package interval

import (
	"fmt"

	"github.com/gruntwork-io/go-commons/errors"
)

// Interval is the distance between two pitches, measured as a scale degree,
// a quality and a semitone count. The tritone has no degree or quality.
type Interval struct {
	name      string
	degree    int
	quality   Quality
	diatonic  bool
	semitones int
}

// FromSemitones returns the simple interval spanning n semitones, for n in [0,12].
func FromSemitones(n int) (Interval, error) {
	if n < 0 || n >= len(ShorthandNames) {
		return Interval{}, errors.WithStackTrace(UnknownIntervalError{Name: fmt.Sprintf("%d semitones", n)})
	}
	return tableInterval(n), nil
}

// Degree returns the scale degree, or false for the tritone.
func (i Interval) Degree() (int, bool) {
	return i.degree, i.diatonic
}

// Quality returns the interval quality, or false for the tritone.
func (i Interval) Quality() (Quality, bool) {
	return i.quality, i.diatonic
}

func (i Interval) Semitones() int {
	return i.semitones
}

// Name returns the name the interval was parsed from.
func (i Interval) Name() string {
	return i.name
}

func (i Interval) String() string {
	return i.name
}

// IsCompound is true for intervals wider than an octave.
func (i Interval) IsCompound() bool {
	if !i.diatonic {
		return i.semitones > 12
	}
	return i.degree > 8
}

// Intervals holds the simple intervals, indexed by semitones.
var Intervals = func() []Interval {
	out := make([]Interval, len(ShorthandNames))
	for s := range out {
		out[s] = tableInterval(s)
	}
	return out
}()
