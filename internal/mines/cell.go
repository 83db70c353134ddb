package mines

import "fmt"

type CellState int8

const (
	Covered CellState = iota
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Revealed:
		return "revealed"
	default:
		return "!"
	}
}

type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Cell is owned by its Board; only the board changes it.
type Cell struct {
	row, col int
	mine     bool
	adjacent int
	state    CellState
}

func (c *Cell) Row() int           { return c.row }
func (c *Cell) Col() int           { return c.col }
func (c *Cell) Position() Position { return Position{c.row, c.col} }
func (c *Cell) HasMine() bool      { return c.mine }
func (c *Cell) State() CellState   { return c.state }
func (c *Cell) Covered() bool      { return c.state == Covered }
func (c *Cell) Revealed() bool     { return c.state == Revealed }

// AdjacentMines is only meaningful for non-mine cells once the board has
// computed adjacency.
func (c *Cell) AdjacentMines() int { return c.adjacent }

// reveal is one-way; nothing covers a cell again.
func (c *Cell) reveal() {
	c.state = Revealed
}

// CellView holds what a renderer may know about a cell. Mine and Adjacent
// stay zero while the cell is covered.
type CellView struct {
	State    CellState
	Mine     bool
	Adjacent int
}

func (c *Cell) view() CellView {
	if c.state == Covered {
		return CellView{State: Covered}
	}
	return CellView{State: Revealed, Mine: c.mine, Adjacent: c.adjacent}
}
