package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

const (
	MinSize = 2
	// MaxSize keeps every row addressable by a single letter.
	MaxSize = 26
)

var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, a...)...)
}

func ParseSize(s string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid("board size must be a positive integer")
	}
	if err := checkSize(size); err != nil {
		return 0, err
	}
	return size, nil
}

func checkSize(size int) error {
	if size < MinSize || size > MaxSize {
		return invalid("board size must be between %d and %d", MinSize, MaxSize)
	}
	return nil
}

func ParseMineCount(s string, size int) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid("mine count must be a positive integer")
	}
	if err := checkMineCount(count, size); err != nil {
		return 0, err
	}
	return count, nil
}

func checkMineCount(count, size int) error {
	if maxMines := mines.MaxMines(size); count <= 0 || count > maxMines {
		return invalid("number of mines must be between 1 and %d", maxMines)
	}
	return nil
}

// ParseCoordinate reads a cell such as "A1" or " c4 ": a row letter followed
// by a 1-based column number.
func ParseCoordinate(s string, size int) (mines.Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return mines.Position{}, invalid("cell coordinate cannot be empty")
	}
	if len(s) < 2 {
		return mines.Position{}, invalid("invalid cell coordinate format, example: A1")
	}

	row := int(s[0]) - 'A'
	if row < 0 || row >= size {
		return mines.Position{}, invalid("row must be between A and %s", render.RowLabel(size-1))
	}

	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return mines.Position{}, invalid("column must be a number between 1 and %d", size)
	}
	if col < 1 || col > size {
		return mines.Position{}, invalid("column must be between 1 and %d", size)
	}

	return mines.Position{Row: row, Col: col - 1}, nil
}

type GameParams struct {
	Size  int `schema:"size,required"`
	Mines int `schema:"mines,required"`
}

// Validate applies the limits of ParseSize and ParseMineCount.
func (p GameParams) Validate() error {
	if err := checkSize(p.Size); err != nil {
		return err
	}
	return checkMineCount(p.Mines, p.Size)
}

func decodeGameParams(src map[string][]string) (GameParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto GameParams
	err := dec.Decode(&dto, src)
	return dto, err
}

// ParseGameParams reads space separated key=value pairs, e.g.
// "size=9 mines=10".
func ParseGameParams(s string) (GameParams, error) {
	src := make(map[string][]string)
	for _, field := range strings.Fields(s) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" {
			return GameParams{}, invalid("expected key=value, got %q", field)
		}
		src[strings.ToLower(key)] = append(src[strings.ToLower(key)], value)
	}

	params, err := decodeGameParams(src)
	if err != nil {
		return GameParams{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := params.Validate(); err != nil {
		return GameParams{}, err
	}
	return params, nil
}
