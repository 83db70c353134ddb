package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxMines(t *testing.T) {
	for size, want := range map[int]int{
		1:  0,
		2:  1,
		3:  3,
		5:  8,
		9:  28,
		10: 35,
		26: 236,
	} {
		assert.Equal(t, want, MaxMines(size), "size %d", size)
	}
}

func TestValidateParameters(t *testing.T) {
	tests := []struct {
		size, mines int
		ok          bool
	}{
		{5, 8, true},
		{5, 9, false},
		{5, 1, true},
		{5, 0, false},
		{5, -1, false},
		{0, 1, false},
		{-3, 1, false},
		{1, 1, false},
		{2, 1, true},
		{10, 35, true},
		{10, 36, false},
	}
	for _, tt := range tests {
		err := ValidateParameters(tt.size, tt.mines)
		if tt.ok {
			assert.NoError(t, err, "%dx%d with %d mines", tt.size, tt.size, tt.mines)
		} else {
			assert.ErrorIs(t, err, ErrInvalidArgument, "%dx%d with %d mines", tt.size, tt.size, tt.mines)
		}
	}
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))

	_, err := g.Generate(5, 9, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = g.Generate(0, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = g.Generate(5, 3, &Position{5, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		size, mines int
		exclude     *Position
	}{
		{"smallest", 2, 1, nil},
		{"single mine", 5, 1, nil},
		{"dense", 5, 8, nil},
		{"beginner", 9, 10, nil},
		{"beginner with exclusion", 9, 10, &Position{4, 4}},
		{"dense with corner exclusion", 10, 35, &Position{0, 0}},
		{"large", 26, 200, &Position{25, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			b, err := NewGenerator(r).Generate(tt.size, tt.mines, tt.exclude)
			require.NoError(t, err)

			assert.Equal(t, tt.size, b.Size())
			assert.Equal(t, tt.mines, b.TotalMines())
			assert.Equal(t, tt.mines, b.Mines())
			assert.Equal(t, 0, b.RevealedCount())

			for row := range tt.size {
				for col := range tt.size {
					c, _ := b.Cell(row, col)
					assert.True(t, c.Covered())
					if !c.HasMine() {
						assert.Equal(t, countAdjacentMines(b, row, col), c.AdjacentMines())
					}
				}
			}

			if tt.exclude != nil {
				c, _ := b.Cell(tt.exclude.Row, tt.exclude.Col)
				assert.False(t, c.HasMine())
			}
		})
	}
}

func TestGenerateKeepsEveryExcludedCellClear(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g := NewGenerator(r)

	for _, size := range []int{2, 3, 5, 8} {
		mines := MaxMines(size)
		for row := range size {
			for col := range size {
				b, err := g.Generate(size, mines, &Position{row, col})
				require.NoError(t, err)
				assert.Equal(t, mines, b.Mines())

				c, _ := b.Cell(row, col)
				assert.False(t, c.HasMine(), "%dx%d @ %d:%d", size, size, row, col)
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := NewGenerator(rand.New(rand.NewPCG(7, 7))).Generate(9, 10, nil)
	require.NoError(t, err)
	b, err := NewGenerator(rand.New(rand.NewPCG(7, 7))).Generate(9, 10, nil)
	require.NoError(t, err)

	for i := range a.cells {
		assert.Equal(t, a.cells[i].mine, b.cells[i].mine)
		assert.Equal(t, a.cells[i].adjacent, b.cells[i].adjacent)
	}
}

func TestGenerateDrawsFromCandidateList(t *testing.T) {
	// IntN always yielding 0 arms the first candidate, then whatever got
	// swapped into its slot.
	b, err := NewGenerator(&scriptedRand{}).Generate(3, 3, nil)
	require.NoError(t, err)
	for _, p := range []Position{{0, 0}, {2, 2}, {2, 1}} {
		c, _ := b.Cell(p.Row, p.Col)
		assert.True(t, c.HasMine(), p)
	}

	b, err = NewGenerator(&scriptedRand{}).Generate(3, 1, &Position{0, 0})
	require.NoError(t, err)
	c, _ := b.Cell(0, 1)
	assert.True(t, c.HasMine())
}

func TestGenerateMaxDensityLargeBoard(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	const size = 200
	b, err := NewGenerator(rand.New(rand.NewPCG(1, 2))).Generate(
		size, MaxMines(size), &Position{size / 2, size / 2},
	)
	require.NoError(t, err)
	assert.Equal(t, MaxMines(size), b.Mines())
}
