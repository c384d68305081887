package searcher

import (
	"math"
	"twg/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)

const MaxCutoff = math.MaxInt32 // Rollouts run to the end of the game

type Node interface {
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	Backup(player string, score float64) Node
	applyLoss()
	stats() (player string, rewards float64, visits float64)
}

// computeReward converts a score earned by player into the reward of the
// player who moved into a node.
func computeReward(player string, score float64, nodePlayer string) float64 {
	if player == nodePlayer {
		return score
	}
	return -score
}
