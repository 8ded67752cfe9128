package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitchClass(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expected int
	}{
		{"C", 0},
		{"c", 0},
		{"C#", 1},
		{"C♯", 1},
		{"Db", 1},
		{"D♭", 1},
		{"E", 4},
		{"Fx", 7},
		{"G𝄪", 9},
		{"B𝄫", 9},
		{"B#", 0},
		{"Cb", 11},
		{"bb", 10},
		{"Ebb", 2},
	}

	for _, testCase := range testCases {
		pc, err := ParsePitchClass(testCase.name)
		require.NoError(t, err, testCase.name)
		assert.Equal(t, testCase.expected, pc, testCase.name)
	}
}

func TestParsePitchClassUnknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "H", "C4", "C?", "#"} {
		_, err := ParsePitchClass(name)
		require.Error(t, err, name)
		assert.True(t, IsUnknownPitchName(err), name)
	}
}

func TestNoteNamesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, spelling := range []Spelling{DefaultSpelling, SharpSpelling, FlatSpelling} {
		table := spelling.Names()
		require.Len(t, table, 12)
		for i, name := range table {
			pc, err := ParsePitchClass(name)
			require.NoError(t, err)
			assert.Equal(t, i, pc, name)
		}
	}
	assert.Equal(t, "B♭", PitchClassName(-2))
}

func TestParseSpelling(t *testing.T) {
	t.Parallel()

	s, err := ParseSpelling("flat")
	require.NoError(t, err)
	assert.Equal(t, FlatSpelling, s)

	s, err = ParseSpelling("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSpelling, s)

	_, err = ParseSpelling("double-sharp")
	require.Error(t, err)
}
