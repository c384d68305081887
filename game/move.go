package game

// GameMove wraps an action id. Dropping a piece is deterministic.
type GameMove struct {
	Action int
}

func (gm GameMove) IsStochastic() bool {
	return false
}
