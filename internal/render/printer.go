package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	CoveredMarker = "_"
	MineMarker    = "*"
)

// Printer draws a board as text: a header of 1-based column numbers, then
// one line per row labelled A, B, C and so on. Every cell is followed by a
// single space.
type Printer struct{}

func (Printer) Print(b *mines.Board) string {
	var sb strings.Builder
	size := b.Size()

	fmt.Fprint(&sb, "  ")
	for col := range size {
		fmt.Fprint(&sb, col+1, " ")
	}
	fmt.Fprint(&sb, "\n")

	for row := range size {
		fmt.Fprint(&sb, RowLabel(row)+" ")
		for col := range size {
			v, _ := b.View(row, col)
			fmt.Fprint(&sb, marker(v)+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}

func marker(v mines.CellView) string {
	switch {
	case v.State == mines.Covered:
		return CoveredMarker
	case v.Mine:
		return MineMarker
	default:
		return strconv.Itoa(v.Adjacent)
	}
}

// RowLabel maps 0 to "A", 1 to "B" and so on.
func RowLabel(row int) string {
	return string(rune('A' + row))
}
