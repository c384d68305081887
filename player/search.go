package player

import (
	"twg/experiments/metrics"
	"twg/game"
	"twg/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Search plays the most visited move of a tree search run on the canonical
// form of the position. It follows the game through Observe so that the
// search tree of the previous move can be reused.
type Search struct {
	mcts    *searcher.MCTS
	state   game.GameState // canonical frame of the last searched position
	tracked bool
	lineage []searcher.Segment
	metric  metrics.SearchMetric
}

func NewSearch(mcts *searcher.MCTS) *Search {
	return &Search{mcts: mcts}
}

func (s *Search) Name() string {
	return "mcts"
}

func (s *Search) Play(state game.GameState) (int, error) {
	canonical := state.Canonical()
	if len(canonical.LegalMoves()) == 0 {
		return 0, ErrNoMoves
	}

	lineage := s.lineage
	if !s.tracked {
		lineage = nil
	}
	policy, metric := s.mcts.Simulate(canonical, lineage)
	s.metric = metric
	s.state = canonical
	s.tracked = true
	s.lineage = nil

	action := argmax(policy)
	log.Debug().Int("action", action).Int("episodes", metric.Episodes).Msg("search finished")
	return action, nil
}

// Observe replays action on the canonical frame. Actions name cells, so they
// are the same in both frames.
func (s *Search) Observe(action int) {
	if !s.tracked {
		return
	}
	next, err := s.state.Apply(action)
	if err != nil {
		s.tracked = false
		s.lineage = nil
		return
	}
	s.state = next
	s.lineage = append(s.lineage, searcher.Segment{
		Move:      game.GameMove{Action: action},
		StateHash: next.Hash(),
	})
}

func (s *Search) LastSearch() metrics.SearchMetric {
	return s.metric
}

// argmax returns the action with the largest share; ties go to the lower
// action.
func argmax(policy map[game.Move]float64) int {
	best := lo.MaxBy(lo.Entries(policy), func(a, b lo.Entry[game.Move, float64]) bool {
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Key.(game.GameMove).Action < b.Key.(game.GameMove).Action
	})
	return best.Key.(game.GameMove).Action
}
