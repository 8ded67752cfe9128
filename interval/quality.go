package interval

import (
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
)

// Quality is an interval quality. The values are ordered from narrowest to widest.
type Quality int

const (
	Diminished Quality = iota
	Minor
	Perfect
	Major
	Augmented
)

// ParseQuality accepts the single-letter codes A, M, P, m and d, or the words
// "augmented" and "diminished" in any case.
func ParseQuality(token string) (Quality, error) {
	switch token {
	case "A":
		return Augmented, nil
	case "M":
		return Major, nil
	case "P":
		return Perfect, nil
	case "m":
		return Minor, nil
	case "d":
		return Diminished, nil
	}
	switch strings.ToLower(token) {
	case "augmented":
		return Augmented, nil
	case "diminished":
		return Diminished, nil
	}
	return 0, errors.WithStackTrace(InvalidQualityError{Token: token})
}

// String returns the single-letter code for the quality.
func (q Quality) String() string {
	switch q {
	case Diminished:
		return "d"
	case Minor:
		return "m"
	case Perfect:
		return "P"
	case Major:
		return "M"
	case Augmented:
		return "A"
	}
	return "?"
}

// Name returns the quality as a lower case word
func (q Quality) Name() string {
	switch q {
	case Diminished:
		return "diminished"
	case Minor:
		return "minor"
	case Perfect:
		return "perfect"
	case Major:
		return "major"
	case Augmented:
		return "augmented"
	}
	return "unknown"
}

// IsNatural is true for perfect, major and minor.
func (q Quality) IsNatural() bool {
	return q == Perfect || q == Major || q == Minor
}

// ClosestNatural returns the unaltered quality an augmented or diminished
// interval is measured from. perfectType reports whether the degree is a
// unison, fourth, fifth or octave. Natural qualities are returned unchanged.
func (q Quality) ClosestNatural(perfectType bool) Quality {
	switch q {
	case Augmented:
		if perfectType {
			return Perfect
		}
		return Major
	case Diminished:
		if perfectType {
			return Perfect
		}
		return Minor
	}
	return q
}

// AppliesTo reports whether the quality can qualify a degree of the given type.
func (q Quality) AppliesTo(perfectType bool) bool {
	switch q {
	case Perfect:
		return perfectType
	case Major, Minor:
		return !perfectType
	case Augmented, Diminished:
		return true
	}
	return false
}

// offset is the distance in semitones from the closest natural.
func (q Quality) offset() int {
	switch q {
	case Augmented:
		return 1
	case Diminished:
		return -1
	}
	return 0
}
