package mines

import "fmt"

// Board is a size×size grid of cells stored row-major.
type Board struct {
	size          int
	totalMines    int
	cells         []Cell
	revealedCount int
	detonated     bool
}

// NewBoard returns a covered, mine-free board. size and totalMines are
// expected to be validated already; see [ValidateParameters].
func NewBoard(size, totalMines int) *Board {
	b := &Board{
		size:       size,
		totalMines: totalMines,
		cells:      make([]Cell, size*size),
	}
	for i := range b.cells {
		b.cells[i] = Cell{row: i / size, col: i % size}
	}
	return b
}

func (b *Board) Size() int          { return b.size }
func (b *Board) TotalMines() int    { return b.totalMines }
func (b *Board) RevealedCount() int { return b.revealedCount }

func (b *Board) ValidPosition(row, col int) bool {
	return 0 <= row && row < b.size && 0 <= col && col < b.size
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

func (b *Board) checkPosition(row, col int) error {
	if !b.ValidPosition(row, col) {
		return fmt.Errorf(
			"%w: %v on a %dx%d board", ErrOutOfBounds, Position{row, col}, b.size, b.size,
		)
	}
	return nil
}

func (b *Board) Cell(row, col int) (*Cell, error) {
	if err := b.checkPosition(row, col); err != nil {
		return nil, err
	}
	return &b.cells[b.index(row, col)], nil
}

func (b *Board) View(row, col int) (CellView, error) {
	c, err := b.Cell(row, col)
	if err != nil {
		return CellView{}, err
	}
	return c.view(), nil
}

// neighbours appends the indices of the cells around (row, col), clipped
// at the edges, to dst.
func (b *Board) neighbours(dst []int, row, col int) []int {
	for r := max(0, row-1); r <= min(b.size-1, row+1); r++ {
		for c := max(0, col-1); c <= min(b.size-1, col+1); c++ {
			if r != row || c != col {
				dst = append(dst, b.index(r, c))
			}
		}
	}
	return dst
}

// AdjacentCells returns the 3, 5 or 8 cells around a corner, edge or
// interior position.
func (b *Board) AdjacentCells(row, col int) ([]*Cell, error) {
	if err := b.checkPosition(row, col); err != nil {
		return nil, err
	}
	var buf [8]int
	adjacent := make([]*Cell, 0, 8)
	for _, i := range b.neighbours(buf[:0], row, col) {
		adjacent = append(adjacent, &b.cells[i])
	}
	return adjacent, nil
}

// PlaceMine arms a cell. Placing a mine twice is a no-op. Adjacency must be
// recomputed once all mines are in.
func (b *Board) PlaceMine(row, col int) error {
	if err := b.checkPosition(row, col); err != nil {
		return err
	}
	b.cells[b.index(row, col)].mine = true
	return nil
}

func (b *Board) Mines() (count int) {
	for i := range b.cells {
		if b.cells[i].mine {
			count++
		}
	}
	return
}

// ComputeAdjacency stores the number of mined neighbours on every non-mine
// cell. It runs once, after mine placement and before any reveal.
func (b *Board) ComputeAdjacency() {
	var buf [8]int
	for i := range b.cells {
		c := &b.cells[i]
		if c.mine {
			continue
		}
		n := 0
		for _, j := range b.neighbours(buf[:0], c.row, c.col) {
			if b.cells[j].mine {
				n++
			}
		}
		c.adjacent = n
	}
}

func (b *Board) reveal(c *Cell) {
	c.reveal()
	b.revealedCount++
}

// Reveal uncovers the cell at (row, col) and reports whether it held a
// mine. Revealing an already revealed cell changes nothing. A safe cell
// with no mined neighbours also uncovers its whole zero region together
// with the numbered cells bordering it.
func (b *Board) Reveal(row, col int) (hitMine bool, err error) {
	c, err := b.Cell(row, col)
	if err != nil {
		return false, err
	}
	if c.Revealed() {
		return false, nil
	}

	b.reveal(c)
	if c.mine {
		b.detonated = true
		return true, nil
	}
	if c.adjacent != 0 {
		return false, nil
	}

	/*
	 * Cells are revealed when they are queued, so the revealed check
	 * keeps every index out of the queue after its first visit.
	 */
	var buf [8]int
	todo := newCelltodo(len(b.cells))
	todo.add(b.index(row, col))
	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		for _, j := range b.neighbours(buf[:0], b.cells[i].row, b.cells[i].col) {
			n := &b.cells[j]
			if n.Revealed() || n.mine {
				continue
			}
			b.reveal(n)
			if n.adjacent == 0 {
				todo.add(j)
			}
		}
	}

	return false, nil
}

// Won reports whether every non-mine cell has been revealed. revealedCount
// includes a detonated mine, so a detonation rules out a win even when the
// count happens to match.
func (b *Board) Won() bool {
	return !b.detonated && b.revealedCount == b.size*b.size-b.totalMines
}

func (b *Board) Detonated() bool { return b.detonated }
