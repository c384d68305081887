package gamemaster

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"
	"twg/experiments/metrics"
	"twg/game"
	"twg/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	AgentOne = "agent1"
	AgentTwo = "agent2"
)

// Factory builds a fresh player for one game. Players that keep a search
// tree must not be shared between games running at the same time.
type Factory func() player.Player

// Arena pits two players against each other on one board geometry.
type Arena struct {
	rows      int
	cols      int
	runLength int
	one       Factory
	two       Factory
}

type Result struct {
	Outcome game.Outcome // from agent one's point of view
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}

type Tally struct {
	OneWins int
	TwoWins int
	Draws   int
}

func (t *Tally) add(outcome game.Outcome) {
	switch outcome {
	case game.Win:
		t.OneWins++
	case game.Loss:
		t.TwoWins++
	default:
		t.Draws++
	}
}

func NewArena(rows, cols, runLength int, one, two Factory) (*Arena, error) {
	if _, err := game.InitialState(rows, cols, runLength); err != nil {
		return nil, err
	}
	return &Arena{
		rows:      rows,
		cols:      cols,
		runLength: runLength,
		one:       one,
		two:       two,
	}, nil
}

// PlayGame plays one game from the empty board. Agent one moves first when
// oneStarts is set.
func (a *Arena) PlayGame(ctx context.Context, oneStarts bool) (Result, error) {
	state, err := game.NewGameState(a.rows, a.cols, a.runLength)
	if err != nil {
		return Result{}, err
	}

	players := map[game.Mark]player.Player{game.MarkA: a.one(), game.MarkB: a.two()}
	oneMark, starter := game.MarkA, AgentOne
	if !oneStarts {
		players[game.MarkA], players[game.MarkB] = players[game.MarkB], players[game.MarkA]
		oneMark, starter = game.MarkB, AgentTwo
	}

	gameMetric := metrics.GameMetric{StartingPlayer: starter, StartTime: time.Now()}
	moves := []metrics.MoveMetric{}
	log.Debug().Msgf("%s is starting", starter)

	step := 1
	for !state.Outcome().Terminal() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		current := players[state.Turn]
		action, err := current.Play(state)
		if err != nil {
			return Result{}, fmt.Errorf("%s failed to move: %w", current.Name(), err)
		}
		if !state.Mask().Allows(action) {
			err = &game.IllegalMoveError{Action: action, Reason: "not a landing cell"}
			return Result{}, fmt.Errorf("%s played %s: %w", current.Name(), state.Board.FormatAction(action), err)
		}
		next, err := state.Apply(action)
		if err != nil {
			return Result{}, fmt.Errorf("%s played %s: %w", current.Name(), state.Board.FormatAction(action), err)
		}

		move := metrics.MoveMetric{Step: step, Player: state.Player(), Action: action}
		if reporter, ok := current.(player.Reporter); ok {
			move.SearchMetric = reporter.LastSearch()
		}
		moves = append(moves, move)

		for _, p := range players {
			if observer, ok := p.(player.Observer); ok {
				observer.Observe(action)
			}
		}
		state = next
		step++
	}

	outcome := state.Outcome()
	if state.Turn != oneMark {
		outcome = outcome.Invert()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moves)
	gameMetric.Outcome = outcome.String()
	switch outcome {
	case game.Win:
		gameMetric.Winner = AgentOne
	case game.Loss:
		gameMetric.Winner = AgentTwo
	}

	return Result{Outcome: outcome, Game: gameMetric, Moves: moves}, nil
}

// PlayGames plays n games concurrently, alternating the starting agent.
// Results are in game order.
func (a *Arena) PlayGames(ctx context.Context, n int) (Tally, []Result, error) {
	results := make([]Result, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	tally := Tally{}
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			result, err := a.PlayGame(ctx, i%2 == 0)
			if err != nil {
				return err
			}
			results[i] = result

			mu.Lock()
			tally.add(result.Outcome)
			mu.Unlock()

			log.Info().Int("game", i+1).Str("outcome", result.Outcome.String()).
				Int("moves", result.Game.TotalMoves).Msgf("completed game %d of %d", i+1, n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Tally{}, nil, err
	}
	return tally, results, nil
}
