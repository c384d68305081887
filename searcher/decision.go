package searcher

import (
	"sync"
	"twg/game"

	"golang.org/x/exp/rand"
)

// decision is a node whose outgoing moves are chosen by a player. Its
// statistics are kept from the point of view of player, the side that made the
// move leading here.
type decision struct {
	sync.RWMutex
	parent     *decision
	player     string
	hash       game.StateHash
	unexplored []game.Move
	explored   []game.Move
	children   []Node
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, player string, state game.State) *decision {
	moves := state.LegalMoves()
	unexplored := make([]game.Move, len(moves))
	copy(unexplored, moves)
	rand.Shuffle(len(unexplored), func(i, j int) {
		unexplored[i], unexplored[j] = unexplored[j], unexplored[i]
	})

	return &decision{
		parent:     parent,
		player:     player,
		hash:       state.Hash(),
		unexplored: unexplored,
		explored:   make([]game.Move, 0, len(moves)),
		children:   make([]Node, 0, len(moves)),
	}
}

func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.expand(state)
		child.applyLoss()
		return child, childState, false
	}

	if len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	// Fully expanded node; other workers may still be backing up, so the
	// parent can briefly trail its children's virtual visits
	ith := newUCT(CSquared, max(d.visits, 1)).pick(d.children)
	child := d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) expand(state game.State) (*decision, game.State) {
	last := len(d.unexplored) - 1
	move := d.unexplored[last]
	d.unexplored = d.unexplored[:last]

	childState := state.Play(move)
	child := newDecision(d, state.Player(), childState)
	d.explored = append(d.explored, move)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) stats() (string, float64, float64) {
	d.RLock()
	defer d.RUnlock()

	return d.player, d.rewards, d.visits
}

func (d *decision) Backup(player string, score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += computeReward(player, score, d.player)
	d.visits++

	if d.parent == nil {
		return nil
	}
	return d.parent
}

// child returns the explored child reached by move.
func (d *decision) child(move game.Move) *decision {
	d.RLock()
	defer d.RUnlock()

	for i, explored := range d.explored {
		if explored == move {
			return d.children[i].(*decision)
		}
	}
	return nil
}

// Policy returns the share of visits each explored move received.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	total := 0.0
	for _, child := range d.children {
		_, _, visits := child.stats()
		total += visits
	}

	policy := make(map[game.Move]float64, len(d.children))
	for i, child := range d.children {
		_, _, visits := child.stats()
		if total > 0 {
			policy[d.explored[i]] = visits / total
		} else {
			policy[d.explored[i]] = 0
		}
	}
	return policy
}
