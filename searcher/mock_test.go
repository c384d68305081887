package searcher

import (
	"twg/experiments/metrics"
	"twg/game"
)

type mockMove struct {
	id int
}

func (m mockMove) IsStochastic() bool {
	return false
}

type mockState struct {
	player string
	moves  []game.Move
	played []game.Move
	hash   game.StateHash
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	played := append([]game.Move{}, m.played...)
	return mockState{played: append(played, move)}
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() string {
	return ""
}

func metricsStub() metrics.Collector {
	return metrics.NewDummyCollector()
}
