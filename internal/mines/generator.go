package mines

import "fmt"

// MaxMineDensityPercent caps the share of mined cells at 35%. Input
// validation uses [MaxMines] as well so both sides agree on the limit.
const MaxMineDensityPercent = 35

// MaxMines returns floor(size² × 0.35).
func MaxMines(size int) int {
	return size * size * MaxMineDensityPercent / 100
}

func ValidateParameters(size, mineCount int) error {
	if size <= 0 {
		return fmt.Errorf("%w: board size must be positive", ErrInvalidArgument)
	}
	maxMines := MaxMines(size)
	if mineCount <= 0 || mineCount > maxMines {
		return fmt.Errorf(
			"%w: number of mines must be between 1 and %d", ErrInvalidArgument, maxMines,
		)
	}
	return nil
}

// Rand is satisfied by *math/rand/v2.Rand.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type Generator struct {
	rnd Rand
}

func NewGenerator(rnd Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate builds a populated board. When exclude is not nil that cell is
// guaranteed to stay free of mines. The same random sequence always yields
// the same board.
func (g *Generator) Generate(size, mineCount int, exclude *Position) (*Board, error) {
	if err := ValidateParameters(size, mineCount); err != nil {
		return nil, err
	}

	board := NewBoard(size, mineCount)

	skip := -1
	if exclude != nil {
		if err := board.checkPosition(exclude.Row, exclude.Col); err != nil {
			return nil, err
		}
		skip = board.index(exclude.Row, exclude.Col)
	}

	/*
	 * Write down every possible mine location, then pick mineCount of
	 * them off the list, moving the last candidate into each hole.
	 */
	candidates := make([]int, 0, size*size)
	for i := range size * size {
		if i != skip {
			candidates = append(candidates, i)
		}
	}

	k := len(candidates)
	for range mineCount {
		i := g.rnd.IntN(k)
		board.cells[candidates[i]].mine = true
		k--
		candidates[i] = candidates[k]
	}

	board.ComputeAdjacency()
	return board, nil
}
