package player

import (
	"errors"
	"twg/experiments/metrics"
	"twg/game"

	"lukechampine.com/frand"
)

// ErrNoMoves is returned when a player is asked to move in a finished game.
var ErrNoMoves = errors.New("no legal moves")

// Player picks an action for the side to move in state.
type Player interface {
	Name() string
	Play(state game.GameState) (int, error)
}

// Observer is told about every action played in the game, including the
// observer's own.
type Observer interface {
	Observe(action int)
}

// Reporter exposes the metrics of the last search a player ran.
type Reporter interface {
	LastSearch() metrics.SearchMetric
}

type randomPlayer struct{}

// NewRandom returns a player choosing uniformly among the legal actions.
func NewRandom() Player {
	return randomPlayer{}
}

func (randomPlayer) Name() string {
	return "random"
}

func (randomPlayer) Play(state game.GameState) (int, error) {
	if state.Outcome().Terminal() {
		return 0, ErrNoMoves
	}
	actions := state.Mask().Actions()
	return actions[frand.Intn(len(actions))], nil
}
