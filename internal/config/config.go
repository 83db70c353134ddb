package config

import (
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vancomm/minesweeper/internal/input"
)

const EnvPrefix = "MINES"

const (
	keySize     = "size"
	keyMines    = "mines"
	keySeed     = "seed"
	keyDev      = "dev"
	keyLogFile  = "log-file"
	keyLogLevel = "log-level"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Size and Mines preset the first game. Both zero means ask the player.
	Size  int
	Mines int
	// Seed fixes the board sequence when not zero.
	Seed        uint64
	Development bool
	LogFile     string
	LogLevel    string
}

// BindFlags registers every setting on fs. Each one can also be given as
// MINES_<NAME> in the environment, e.g. MINES_LOG_LEVEL=debug.
func BindFlags(fs *pflag.FlagSet) {
	fs.Int(keySize, 0, "grid size, asked for when unset (env: MINES_SIZE)")
	fs.Int(keyMines, 0, "number of mines, asked for when unset (env: MINES_MINES)")
	fs.Uint64(keySeed, 0, "random seed, 0 picks one (env: MINES_SEED)")
	fs.Bool(keyDev, false, "development mode, forces debug logging (env: MINES_DEV)")
	fs.String(keyLogFile, "", "write logs to this file instead of stderr (env: MINES_LOG_FILE)")
	fs.String(keyLogLevel, "info", "log level (env: MINES_LOG_LEVEL)")
}

// Load reads the environment and the flags in fs, if any. A flag set on the
// command line wins over the environment.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyLogLevel, "info")

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Size:        v.GetInt(keySize),
		Mines:       v.GetInt(keyMines),
		Seed:        v.GetUint64(keySeed),
		Development: v.GetBool(keyDev),
		LogFile:     v.GetString(keyLogFile),
		LogLevel:    v.GetString(keyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Size != 0 || c.Mines != 0 {
		if c.Size == 0 || c.Mines == 0 {
			return fmt.Errorf("%w: size and mines must be set together", ErrInvalidConfig)
		}
		if err := c.GameParams().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Preset reports whether the first game's parameters come from config.
func (c *Config) Preset() bool {
	return c.Size != 0 && c.Mines != 0
}

func (c *Config) GameParams() input.GameParams {
	return input.GameParams{Size: c.Size, Mines: c.Mines}
}

// Level is the configured log level, or debug in development mode.
func (c *Config) Level() logrus.Level {
	if c.Development {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c *Config) Rand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return createRand()
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"size":      c.Size,
		"mines":     c.Mines,
		"seed":      c.Seed,
		"dev":       c.Development,
		"log_file":  c.LogFile,
		"log_level": c.LogLevel,
	}
}
