package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestParseSize(t *testing.T) {
	for s, want := range map[string]int{"5": 5, " 10 ": 10, "2": 2, "26": 26} {
		got, err := ParseSize(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got)
	}

	for _, s := range []string{"1", "0", "-1", "abc", "", "27", "4.5"} {
		_, err := ParseSize(s)
		assert.ErrorIs(t, err, ErrInvalidInput, s)
	}
}

func TestParseMineCount(t *testing.T) {
	const size = 5
	maxMines := mines.MaxMines(size)
	require.Equal(t, 8, maxMines)

	for s, want := range map[string]int{"1": 1, " 5 ": 5, "8": 8} {
		got, err := ParseMineCount(s, size)
		require.NoError(t, err, s)
		assert.Equal(t, want, got)
	}

	for _, s := range []string{"0", "-1", "9", "abc", "", "!"} {
		_, err := ParseMineCount(s, size)
		assert.ErrorIs(t, err, ErrInvalidInput, s)
	}

	_, err := ParseMineCount("9", size)
	assert.EqualError(t, err, "invalid input: number of mines must be between 1 and 8")
}

func TestParseCoordinate(t *testing.T) {
	const size = 5

	valid := map[string]mines.Position{
		"A1":   {Row: 0, Col: 0},
		"E5":   {Row: 4, Col: 4},
		" C4 ": {Row: 2, Col: 3},
		"a1":   {Row: 0, Col: 0},
		"b02":  {Row: 1, Col: 1},
	}
	for s, want := range valid {
		got, err := ParseCoordinate(s, size)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	for _, s := range []string{"", "  ", "!", "A", "1", "F1", "A6", "A0", "AA", "A 1", "A-1", "11"} {
		_, err := ParseCoordinate(s, size)
		assert.ErrorIs(t, err, ErrInvalidInput, "%q", s)
	}
}

func TestParseCoordinateMessages(t *testing.T) {
	_, err := ParseCoordinate("F1", 5)
	assert.EqualError(t, err, "invalid input: row must be between A and E")

	_, err = ParseCoordinate("A6", 5)
	assert.EqualError(t, err, "invalid input: column must be between 1 and 5")

	_, err = ParseCoordinate("", 5)
	assert.EqualError(t, err, "invalid input: cell coordinate cannot be empty")
}

func TestParseGameParams(t *testing.T) {
	tests := []struct {
		in   string
		want GameParams
		ok   bool
	}{
		{"size=9 mines=10", GameParams{Size: 9, Mines: 10}, true},
		{"  mines=3   size=4 ", GameParams{Size: 4, Mines: 3}, true},
		{"SIZE=5 Mines=8", GameParams{Size: 5, Mines: 8}, true},
		{"size=5 mines=8 unique=true", GameParams{Size: 5, Mines: 8}, true},
		{"size=5 mines=9", GameParams{}, false},
		{"size=1 mines=1", GameParams{}, false},
		{"size=30 mines=10", GameParams{}, false},
		{"size=5", GameParams{}, false},
		{"mines=5", GameParams{}, false},
		{"size=five mines=2", GameParams{}, false},
		{"size 5", GameParams{}, false},
		{"=5", GameParams{}, false},
		{"", GameParams{}, false},
	}

	for _, tt := range tests {
		got, err := ParseGameParams(tt.in)
		if tt.ok {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidInput, tt.in)
		}
	}
}
