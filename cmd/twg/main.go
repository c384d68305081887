package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"
	"twg/config"
	"twg/experiments"
	"twg/experiments/metrics"
	"twg/session"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if cfg.Arena || cfg.Experiment != "" {
		err = runArena(ctx, cfg)
	} else {
		err = runShell(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func agentConfig(cfg *config.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:         1,
		Kind:       cfg.Opponent,
		Goroutines: cfg.Goroutines,
		Duration:   cfg.Duration,
		Episodes:   cfg.Episodes,
		Cutoff:     cfg.Cutoff,
	}
}

func runArena(ctx context.Context, cfg *config.Config) error {
	var e experiments.Experiment
	switch cfg.Experiment {
	case "parallelization":
		e = experiments.Parallelization(cfg.Rows, cfg.Cols, cfg.RunLength, cfg.Games, max(cfg.Duration, 10*time.Millisecond))
	case "cutoff":
		e = experiments.Cutoff(cfg.Rows, cfg.Cols, cfg.RunLength, cfg.Games, max(cfg.Duration, 10*time.Millisecond))
	default:
		ai := agentConfig(cfg)
		random := metrics.AgentConfig{ID: 2, Kind: experiments.KindRandom}
		e = experiments.Experiment{
			Name:      "arena",
			Rows:      cfg.Rows,
			Cols:      cfg.Cols,
			RunLength: cfg.RunLength,
			Games:     cfg.Games,
			Configs:   []metrics.AgentConfig{ai, random},
			MatchUps:  [][2]metrics.AgentConfig{{ai, random}},
		}
	}

	report, err := e.Run(ctx)
	if err != nil {
		return err
	}
	for i, tally := range report.Tallies {
		fmt.Printf("matchup %d: agent1 %d, agent2 %d, draws %d\n", i+1, tally.OneWins, tally.TwoWins, tally.Draws)
	}

	if cfg.MetricsDir == "" {
		return nil
	}
	dir, err := e.Store(cfg.MetricsDir, report)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("stored experiment results")
	return nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func runShell(cfg *config.Config) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtwg>\033[0m ",
		HistoryFile:     "/tmp/twg-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	ai := experiments.NewFactory(agentConfig(cfg))()
	s, err := session.New(cfg.Rows, cfg.Cols, cfg.RunLength, ai, cfg.HumanFirst)
	if err != nil {
		return err
	}

	out := l.Stdout()
	show(out, []string{session.Hello})
	show(out, s.Start())

	for {
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		}

		replies, err := s.Handle(line)
		if err != nil {
			log.Error().Err(err).Msg("game aborted")
			show(out, []string{session.PlayAgain})
			continue
		}
		show(out, replies)
	}
}

func show(w io.Writer, replies []string) {
	for _, reply := range replies {
		io.WriteString(w, strings.TrimRight(reply, "\n"))
		io.WriteString(w, "\n")
	}
}
