package searcher

import (
	"sync"
	"time"
	"twg/experiments/metrics"
	"twg/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// Segment is one played move and the hash of the state it led to.
type Segment struct {
	Move      game.Move
	StateHash game.StateHash
}

// MCTS runs tree-parallel Monte Carlo tree search with virtual loss. An MCTS
// keeps the tree of its last search so that it can be reused; it must not run
// two searches at once.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	root       *decision
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(u *MCTS) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(u *MCTS) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(u *MCTS) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateOpenLines,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from state and returns the share of root visits per move.
// lineage lists the moves played since the previous search; when it leads to
// a node of the previous tree, that subtree is reused.
func (m *MCTS) Simulate(state game.State, lineage []Segment) (map[game.Move]float64, metrics.SearchMetric) {
	m.findRoot(lineage, state)

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(state)
	} else {
		m.countdown(state)
	}
	metric := m.metrics.Complete()

	// Output move policy and move finding metrics
	policy := m.root.Policy()
	return policy, metric
}

func (m *MCTS) iterate(state game.State) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(state)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(state game.State) {
	done := make(chan any)
	var wg sync.WaitGroup

	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(state)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) findRoot(path []Segment, state game.State) {
	root := traverse(m.root, path)
	if root == nil || root.hash != state.Hash() {
		m.root = newDecision(nil, "", state)
		m.metrics.SetTreeReset(true)
		return
	}
	root.parent = nil
	root.player = ""
	m.root = root
	m.metrics.SetTreeReset(false)
}

func traverse(root *decision, path []Segment) *decision {
	if root == nil || len(path) == 0 {
		return nil
	}

	node := root
	for _, segment := range path {
		child := node.child(segment.Move)
		if child == nil { // Node has not expanded this move
			return nil
		}
		if child.hash != segment.StateHash {
			log.Warn().Msgf("node's state hash %d does not match segment's state hash %d", child.hash, segment.StateHash)
			return nil
		}
		node = child
	}
	return node
}

func (m *MCTS) simulate(state game.State) {
	newNode, newState := selectThenExpand(m.root, state)
	player, score := rollout(newState, m.cutoff, m.evaluate, m.metrics)
	backup(newNode, player, score)
}

func selectThenExpand(root Node, state game.State) (Node, game.State) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state)
	}
	return child, state
}

// rollout plays random moves until the game ends or cutoff moves were made,
// and returns a score together with the player it belongs to.
func rollout(state game.State, cutoff int, evaluate game.Evaluate, metrics metrics.Collector) (string, float64) {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		metrics.AddFullPlayout()
		if winner := state.Winner(); winner != "" {
			return winner, Win
		}
		return state.Player(), game.DrawValue
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return state.Player(), evaluate(state)
}

func backup(newNode Node, player string, score float64) {
	node := newNode
	for node != nil {
		parent := node.Backup(player, score)
		node = parent
	}
}
