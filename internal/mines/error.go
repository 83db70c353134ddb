package mines

import "errors"

var (
	// ErrInvalidArgument is returned for board parameters outside the
	// accepted range. It never leaves a board or session half-built.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds is returned by every position-taking operation given
	// a position outside the board. Seeing it means the caller skipped
	// validation.
	ErrOutOfBounds = errors.New("position out of bounds")

	ErrNoGame = errors.New("no game in progress")
)
