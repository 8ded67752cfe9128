package interval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireInterval(t *testing.T, name string, degree int, quality Quality, semitones int) {
	i, err := Parse(name)
	require.NoError(t, err, name)

	d, ok := i.Degree()
	require.True(t, ok, name)
	q, ok := i.Quality()
	require.True(t, ok, name)

	assert.Equal(t, degree, d, name)
	assert.Equal(t, quality, q, name)
	assert.Equal(t, semitones, i.Semitones(), name)
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		degree    int
		quality   Quality
		semitones int
	}{
		{"m3", 3, Minor, 3},
		{"A4", 4, Augmented, 6},
		{"d5", 5, Diminished, 6},
		{"M10", 10, Major, 16},
		{"Minor 2nd", 2, Minor, 1},
		{"P1", 1, Perfect, 0},
		{"Unison", 1, Perfect, 0},
		{"Octave", 8, Perfect, 12},
		{"A3", 3, Augmented, 5},
		{"d3", 3, Diminished, 2},
		{"A6", 6, Augmented, 10},
		{"d7", 7, Diminished, 9},
		{"A8", 8, Augmented, 13},
		{"d1", 1, Diminished, -1},
		{"m9", 9, Minor, 13},
		{"P11", 11, Perfect, 17},
		{"A11", 11, Augmented, 18},
		{"P15", 15, Perfect, 24},
		{"M16", 16, Major, 26},
		{"P22", 22, Perfect, 36},
		{"augmented 4", 4, Augmented, 6},
		{"Diminished5", 5, Diminished, 6},
		{"AUGMENTED 11", 11, Augmented, 18},
	}

	for _, testCase := range testCases {
		requireInterval(t, testCase.name, testCase.degree, testCase.quality, testCase.semitones)
	}
}

func TestParseKeepsName(t *testing.T) {
	t.Parallel()

	i, err := Parse("Minor 3rd")
	require.NoError(t, err)
	assert.Equal(t, "Minor 3rd", i.Name())
	assert.Equal(t, "Minor 3rd", i.String())
}

func TestParseTableRoundTrip(t *testing.T) {
	t.Parallel()

	for s := 0; s <= 12; s++ {
		short, err := Parse(ShorthandNames[s])
		require.NoError(t, err)
		assert.Equal(t, s, short.Semitones(), ShorthandNames[s])

		long, err := Parse(LongNames[s])
		require.NoError(t, err)
		assert.Equal(t, s, long.Semitones(), LongNames[s])
	}
}

func TestParseTritone(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"TT", "Tritone"} {
		i, err := Parse(name)
		require.NoError(t, err)

		_, ok := i.Degree()
		assert.False(t, ok)
		_, ok = i.Quality()
		assert.False(t, ok)
		assert.Equal(t, 6, i.Semitones())
	}
}

func TestCompoundReduction(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"A", "M", "P", "m", "d", "augmented", "diminished"} {
		for d := 9; d <= 15; d++ {
			simple, err := Parse(fmt.Sprintf("%s%d", q, d-7))
			if err != nil {
				// the quality does not apply to this degree at any octave
				_, err = Parse(fmt.Sprintf("%s%d", q, d))
				require.True(t, IsUnknownInterval(err), "%s%d", q, d)
				continue
			}
			compound, err := Parse(fmt.Sprintf("%s%d", q, d))
			require.NoError(t, err)

			simpleDegree, _ := simple.Degree()
			compoundDegree, _ := compound.Degree()
			assert.Equal(t, simple.Semitones()+12, compound.Semitones(), "%s%d", q, d)
			assert.Equal(t, simpleDegree+7, compoundDegree, "%s%d", q, d)
			assert.True(t, compound.IsCompound())
		}
	}
}

func TestParseUnknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"Xyz", "", "m", "3", "M 3", "P3", "M4", "m5", "P0", "d0", "TT2",
		"minor 3rd", "P99999999999999999999", "P9000000000000000000",
	} {
		_, err := Parse(name)
		require.Error(t, err, name)
		assert.True(t, IsUnknownInterval(err), name)
	}
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, MustParse("P5").Semitones())
	assert.Panics(t, func() { MustParse("Xyz") })
}

func TestFromSemitones(t *testing.T) {
	t.Parallel()

	i, err := FromSemitones(4)
	require.NoError(t, err)
	assert.Equal(t, "M3", i.Name())
	d, _ := i.Degree()
	assert.Equal(t, 3, d)
	assert.False(t, i.IsCompound())

	for _, n := range []int{-1, 13} {
		_, err := FromSemitones(n)
		assert.True(t, IsUnknownInterval(err))
	}

	require.Len(t, Intervals, 13)
	assert.Equal(t, "TT", Intervals[6].String())
}
