package experiments

import (
	"context"
	"fmt"
	"time"
	"twg/experiments/metrics"
	"twg/gamemaster"
	"twg/player"
	"twg/searcher"

	"github.com/rs/zerolog/log"
)

const (
	KindSearch = "mcts"
	KindRandom = "random"
)

// Experiment plays every match up Games times on one board geometry.
type Experiment struct {
	Name      string
	Rows      int
	Cols      int
	RunLength int
	Games     int // Per match up
	Configs   []metrics.AgentConfig
	MatchUps  [][2]metrics.AgentConfig
}

// Report holds the records of a finished experiment.
type Report struct {
	Tallies     []gamemaster.Tally // Per match up
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// Parallelization pairs agents with growing goroutine counts against a
// sequential baseline with the same time budget.
func Parallelization(rows, cols, runLength, games int, budget time.Duration) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindSearch, Goroutines: 1, Duration: budget}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16} {
		config := metrics.AgentConfig{ID: i + 1, Kind: KindSearch, Goroutines: goroutines, Duration: budget}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:      "parallelization",
		Rows:      rows,
		Cols:      cols,
		RunLength: runLength,
		Games:     games,
		Configs:   configs,
		MatchUps:  matchUps,
	}
}

// Cutoff pairs agents that stop rollouts early against a full playout
// baseline.
func Cutoff(rows, cols, runLength, games int, budget time.Duration) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindSearch, Goroutines: 4, Duration: budget}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, cutoff := range []int{0, 2, 4, 8, 16} {
		config := baseline
		config.ID = i + 1
		config.Cutoff = cutoff
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:      "cutoff",
		Rows:      rows,
		Cols:      cols,
		RunLength: runLength,
		Games:     games,
		Configs:   configs,
		MatchUps:  matchUps,
	}
}

// Run plays all match ups in order.
func (e Experiment) Run(ctx context.Context) (Report, error) {
	report := Report{}
	count := 0

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchUp := range e.MatchUps {
		config1, config2 := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(e.MatchUps), config1, config2)

		arena, err := gamemaster.NewArena(e.Rows, e.Cols, e.RunLength, NewFactory(config1), NewFactory(config2))
		if err != nil {
			return Report{}, err
		}
		tally, results, err := arena.PlayGames(ctx, e.Games)
		if err != nil {
			return Report{}, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		report.Tallies = append(report.Tallies, tally)

		for _, result := range results {
			count++
			report.GameRecords = append(report.GameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				report.MoveRecords = append(report.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}

		log.Info().Msgf("completed matchup %d of %d: agent1 %d, agent2 %d, draws %d",
			mi+1, len(e.MatchUps), tally.OneWins, tally.TwoWins, tally.Draws)
	}

	log.Info().Msgf("completed %s experiment", e.Name)
	return report, nil
}

// Store writes the agent configs and the report as CSV files under root and
// returns the directory holding them.
func (e Experiment) Store(root string, report Report) (string, error) {
	writer, err := metrics.NewWriter(root, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(e.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.GameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.MoveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// NewFactory returns a factory of players described by config.
func NewFactory(config metrics.AgentConfig) gamemaster.Factory {
	if config.Kind == KindRandom {
		return player.NewRandom
	}
	return func() player.Player {
		return player.NewSearch(createMCTS(config))
	}
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
