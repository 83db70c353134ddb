package mines

// Session plays one board at a time and guarantees that the first reveal
// of every game is safe.
type Session struct {
	gen            *Generator
	board          *Board
	firstMoveTaken bool
	regenerated    int
}

func NewSession(gen *Generator) *Session {
	return &Session{gen: gen}
}

// NewGame replaces the current board with a fresh one. On error the
// session keeps whatever it held before.
func (s *Session) NewGame(size, mineCount int) error {
	board, err := s.gen.Generate(size, mineCount, nil)
	if err != nil {
		return err
	}
	s.board = board
	s.firstMoveTaken = false
	s.regenerated = 0
	return nil
}

// Move reveals a cell and reports whether it held a mine. If the first move
// of a game lands on a mine, the board is swapped for a new one with the
// same parameters that keeps that cell clear.
func (s *Session) Move(row, col int) (hitMine bool, err error) {
	if s.board == nil {
		return false, ErrNoGame
	}

	c, err := s.board.Cell(row, col)
	if err != nil {
		return false, err
	}

	if !s.firstMoveTaken {
		if c.HasMine() {
			board, err := s.gen.Generate(
				s.board.Size(), s.board.TotalMines(), &Position{row, col},
			)
			if err != nil {
				return false, err
			}
			s.board = board
			s.regenerated++
		}
		s.firstMoveTaken = true
	}

	return s.board.Reveal(row, col)
}

func (s *Session) Won() bool {
	return s.board != nil && s.board.Won()
}

// Board returns the current board, or nil before the first NewGame.
// The pointer goes stale when the first move regenerates the board.
func (s *Session) Board() *Board        { return s.board }
func (s *Session) FirstMoveTaken() bool { return s.firstMoveTaken }
func (s *Session) Regenerated() int     { return s.regenerated }
