package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Play Minesweeper in the terminal",
		Long: `minesweeper plays square grids of up to 26x26 cells.

Cells are picked by row letter and column number, e.g. A1. The first
square revealed in a game never holds a mine.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if err := setupLogging(cfg, cmd.ErrOrStderr()); err != nil {
				return err
			}

			log.Debug("starting up")
			log.WithFields(cfg.Fields()).Debug("config")

			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	config.BindFlags(cmd.Flags())
	return cmd
}

// setupLogging sends logs to stderr, or only to a rotating JSON file when
// one is configured so the board stays readable.
func setupLogging(cfg *config.Config, stderr io.Writer) error {
	level := cfg.Level()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development})
	log.ReplaceHooks(make(logrus.LevelHooks))

	if cfg.LogFile == "" {
		log.SetOutput(stderr)
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return nil
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	session := mines.NewSession(mines.NewGenerator(cfg.Rand()))
	con := console.New(session, render.Printer{}, in, out, log)
	if cfg.Preset() {
		con.Preset(cfg.GameParams())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return con.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		log.Info("interrupted")
		return nil
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
