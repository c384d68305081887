package config

import (
	"errors"
	"fmt"
	"time"
	"twg/game"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
)

type Config struct {
	Rows       int
	Cols       int
	RunLength  int
	Goroutines int
	Episodes   int
	Duration   time.Duration
	Cutoff     int
	Opponent   string
	HumanFirst bool
	Arena      bool
	Experiment string
	Games      int
	MetricsDir string
	LogLevel   string
}

// Load parses args. Every flag may also be set through a TWG_ prefixed
// environment variable, e.g. TWG_RUN_LENGTH=3.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("twg", "TWG", flag.ContinueOnError)
	fs.IntVar(&c.Rows, "rows", 6, "number of board rows")
	fs.IntVar(&c.Cols, "cols", 7, "number of board columns")
	fs.IntVar(&c.RunLength, "run-length", 4, "marks in a row needed to win")
	fs.IntVar(&c.Goroutines, "goroutines", 4, "search goroutines per move")
	fs.IntVar(&c.Episodes, "episodes", 400, "search episodes per move, 0 to search for a duration")
	fs.DurationVar(&c.Duration, "duration", 0, "search time per move when episodes is 0")
	fs.IntVar(&c.Cutoff, "cutoff", 0, "rollout depth before evaluating, 0 to play out")
	fs.StringVar(&c.Opponent, "opponent", "mcts", "the AI player: mcts or random")
	fs.BoolVar(&c.HumanFirst, "human-first", true, "whether the human moves first")
	fs.BoolVar(&c.Arena, "arena", false, "play the AI against a random player instead of a human")
	fs.StringVar(&c.Experiment, "experiment", "", "run a preset experiment: parallelization or cutoff")
	fs.IntVar(&c.Games, "games", 10, "games per arena match up")
	fs.StringVar(&c.MetricsDir, "metrics-dir", "", "directory for arena CSV files, empty to skip")
	fs.StringVar(&c.LogLevel, "log-level", "info", "debug, info, warn or error")
	return fs.Parse(args)
}

// Validate checks the board geometry and the search budget.
func (c *Config) Validate() error {
	if _, err := game.InitialState(c.Rows, c.Cols, c.RunLength); err != nil {
		return err
	}
	if c.Opponent != "mcts" && c.Opponent != "random" {
		return fmt.Errorf("unknown opponent %q", c.Opponent)
	}
	if c.Episodes <= 0 && c.Duration <= 0 {
		return errors.New("either episodes or duration must be positive")
	}
	if c.Games <= 0 {
		return errors.New("games must be positive")
	}
	switch c.Experiment {
	case "", "parallelization", "cutoff":
	default:
		return fmt.Errorf("unknown experiment %q", c.Experiment)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
