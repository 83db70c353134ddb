package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

const (
	msgWelcome   = "Welcome to Minesweeper!"
	msgSize      = "Enter the size of the grid (e.g. 4 for a 4x4 grid): "
	msgMines     = "Enter the number of mines to place on the grid (maximum is 35% of the total squares): "
	msgMove      = "Select a square to reveal (e.g. A1): "
	msgLost      = "Oh no, you detonated a mine! Game over."
	msgAdjacent  = "This square contains %d adjacent mines.\n"
	msgUpdated   = "\nHere is your updated minefield:"
	msgWon       = "Congratulations, you have won the game!"
	msgPlayAgain = "Press Enter to play again, type size=N mines=M for a new grid, or q to quit: "
)

// Console runs games of a Session over a line based text stream.
type Console struct {
	session *mines.Session
	printer render.Printer
	in      io.Reader
	out     io.Writer
	log     logrus.FieldLogger

	params *input.GameParams
	lines  chan string
}

func New(
	session *mines.Session, printer render.Printer,
	in io.Reader, out io.Writer, log logrus.FieldLogger,
) *Console {
	return &Console{
		session: session,
		printer: printer,
		in:      in,
		out:     out,
		log:     log,
	}
}

// Preset skips the size and mine prompts for the first game.
func (c *Console) Preset(params input.GameParams) {
	c.params = &params
}

// Run plays until the user quits or input runs out, both of which return
// nil. Cancelling ctx makes Run return ctx.Err() at the next prompt.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.lines = make(chan string)
	go scanLines(ctx, c.in, c.lines)

	err := c.run(ctx)
	if errors.Is(err, io.EOF) {
		c.log.Debug("input closed")
		return nil
	}
	return err
}

func scanLines(ctx context.Context, r io.Reader, lines chan<- string) {
	defer close(lines)
	s := bufio.NewScanner(r)
	for s.Scan() {
		select {
		case lines <- s.Text():
		case <-ctx.Done():
			return
		}
	}
}

func (c *Console) prompt(ctx context.Context, msg string) (string, error) {
	fmt.Fprintln(c.out, msg)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (c *Console) run(ctx context.Context) error {
	fmt.Fprintln(c.out, msgWelcome)
	fmt.Fprintln(c.out)

	var params input.GameParams
	if c.params != nil {
		params = *c.params
	} else {
		var err error
		if params, err = c.askParams(ctx); err != nil {
			return err
		}
	}

	for {
		if err := c.session.NewGame(params.Size, params.Mines); err != nil {
			return err
		}
		c.log.WithFields(logrus.Fields{
			"size":  params.Size,
			"mines": params.Mines,
		}).Info("new game")

		fmt.Fprintln(c.out)
		c.display()

		if err := c.play(ctx); err != nil {
			return err
		}

		next, quit, err := c.askPlayAgain(ctx, params)
		if err != nil {
			return err
		}
		if quit {
			c.log.Debug("quit")
			return nil
		}
		params = next
	}
}

func (c *Console) askParams(ctx context.Context) (input.GameParams, error) {
	var params input.GameParams
	for {
		line, err := c.prompt(ctx, msgSize)
		if err != nil {
			return params, err
		}
		if params.Size, err = input.ParseSize(line); err == nil {
			break
		}
		c.complain(err)
	}
	for {
		line, err := c.prompt(ctx, msgMines)
		if err != nil {
			return params, err
		}
		if params.Mines, err = input.ParseMineCount(line, params.Size); err == nil {
			break
		}
		c.complain(err)
	}
	return params, nil
}

func (c *Console) askMove(ctx context.Context) (mines.Position, error) {
	for {
		line, err := c.prompt(ctx, msgMove)
		if err != nil {
			return mines.Position{}, err
		}
		pos, err := input.ParseCoordinate(line, c.session.Board().Size())
		if err == nil {
			return pos, nil
		}
		c.complain(err)
	}
}

func (c *Console) askPlayAgain(
	ctx context.Context, current input.GameParams,
) (input.GameParams, bool, error) {
	for {
		line, err := c.prompt(ctx, msgPlayAgain)
		if err != nil {
			return current, false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return current, false, nil
		case "q", "quit":
			return current, true, nil
		}
		next, err := input.ParseGameParams(line)
		if err == nil {
			return next, false, nil
		}
		c.complain(err)
	}
}

func (c *Console) play(ctx context.Context) error {
	for moves := 1; ; moves++ {
		pos, err := c.askMove(ctx)
		if err != nil {
			return err
		}

		hit, err := c.session.Move(pos.Row, pos.Col)
		if err != nil {
			return err
		}
		if moves == 1 && c.session.Regenerated() > 0 {
			c.log.WithField("cell", pos).Debug("first move on a mine, board regenerated")
		}

		if hit {
			fmt.Fprintln(c.out, msgLost)
			c.display()
			c.log.WithField("moves", moves).Info("game lost")
			return nil
		}

		cell, err := c.session.Board().Cell(pos.Row, pos.Col)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, msgAdjacent, cell.AdjacentMines())
		fmt.Fprintln(c.out, msgUpdated)
		c.display()

		if c.session.Won() {
			fmt.Fprintln(c.out, msgWon)
			c.log.WithField("moves", moves).Info("game won")
			return nil
		}
	}
}

func (c *Console) display() {
	fmt.Fprintln(c.out, c.printer.Print(c.session.Board()))
}

// complain reports rejected input without the sentinel prefix.
func (c *Console) complain(err error) {
	msg := strings.TrimPrefix(err.Error(), input.ErrInvalidInput.Error()+": ")
	fmt.Fprintln(c.out, msg)
}
