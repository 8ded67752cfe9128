package interval

import (
	"math"
	"regexp"
	"strconv"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/theory/logger"
)

var (
	codePattern = regexp.MustCompile(`^([AMPmd])(\d+)$`)
	wordPattern = regexp.MustCompile(`(?i)^(augmented|diminished)\s*(\d+)$`)
)

// maxOctaves keeps the semitone count of a compound interval inside an int.
const maxOctaves = math.MaxInt/12 - 1

// Parse converts an interval name such as "m3", "Minor 3rd", "A4", "M10" or
// "diminished 5" into an Interval.
func Parse(name string) (Interval, error) {
	// fast path, and the only way to reach the tritone
	if s, ok := lookupName(name); ok {
		i := tableInterval(s)
		i.name = name
		return i, nil
	}

	m := codePattern.FindStringSubmatch(name)
	if m == nil {
		m = wordPattern.FindStringSubmatch(name)
	}
	if m == nil {
		return Interval{}, unknown(name)
	}

	q, err := ParseQuality(m[1])
	if err != nil {
		return Interval{}, err
	}
	degree, err := strconv.Atoi(m[2])
	if err != nil || degree < 1 {
		return Interval{}, unknown(name)
	}

	// peel off octaves until a simple degree remains
	octaves := 0
	if degree > 8 {
		octaves = (degree - 2) / 7
		degree -= 7 * octaves
	}
	if octaves > maxOctaves {
		return Interval{}, unknown(name)
	}

	semitones, ok := resolveSimple(q, degree)
	if !ok {
		return Interval{}, unknown(name)
	}
	if octaves > 0 || !q.IsNatural() {
		logger.GetProjectLogger().Debugf("Resolved %s as %s%d plus %d octave(s)", name, q, degree, octaves)
	}

	return Interval{
		name:      name,
		degree:    degree + 7*octaves,
		quality:   q,
		diatonic:  true,
		semitones: semitones + 12*octaves,
	}, nil
}

// MustParse is like Parse but panics if the name cannot be parsed. It is
// intended for package-level interval tables.
func MustParse(name string) Interval {
	i, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return i
}

// resolveSimple finds the semitone count of a quality on a degree in [1,8].
func resolveSimple(q Quality, degree int) (int, bool) {
	s, perfectType := lookupShorthand(Perfect, degree)
	if !q.AppliesTo(perfectType) {
		return 0, false
	}
	if !perfectType {
		var ok bool
		if s, ok = lookupShorthand(q.ClosestNatural(false), degree); !ok {
			return 0, false
		}
	}
	return s + q.offset(), true
}

func unknown(name string) error {
	logger.GetProjectLogger().Debugf("No interval named %q", name)
	return errors.WithStackTrace(UnknownIntervalError{Name: name})
}
