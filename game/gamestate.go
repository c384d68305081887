package game

import "github.com/cespare/xxhash"

// GameState pairs a board with the side to move. It implements State so that
// the searcher can drive the rule functions.
type GameState struct {
	Board Board
	Turn  Mark
}

// NewGameState returns the initial position with MarkA to move.
func NewGameState(rows, cols, runLength int) (GameState, error) {
	b, err := InitialState(rows, cols, runLength)
	if err != nil {
		return GameState{}, err
	}
	return GameState{Board: b, Turn: MarkA}, nil
}

// Player returns the glyph of the side to move.
func (gs GameState) Player() string {
	return gs.Turn.String()
}

// Mask is the legality vector for the side to move.
func (gs GameState) Mask() Mask {
	return ValidActionMask(gs.Board, gs.Turn)
}

// Outcome judges the position for the side to move.
func (gs GameState) Outcome() Outcome {
	return TerminalValue(gs.Board, gs.Turn)
}

// LegalMoves returns no moves once the game is over.
func (gs GameState) LegalMoves() []Move {
	if gs.Outcome().Terminal() {
		return nil
	}
	actions := gs.Mask().Actions()
	moves := make([]Move, len(actions))
	for i, action := range actions {
		moves[i] = GameMove{Action: action}
	}
	return moves
}

// Apply plays action for the side to move.
func (gs GameState) Apply(action int) (GameState, error) {
	b, turn, err := ApplyAction(gs.Board, gs.Turn, action)
	if err != nil {
		return gs, err
	}
	return GameState{Board: b, Turn: turn}, nil
}

func (gs GameState) Play(move Move) State {
	gameMove, ok := move.(GameMove)
	if !ok {
		panic("unexpected move type")
	}
	next, err := gs.Apply(gameMove.Action)
	if err != nil {
		panic(err)
	}
	return next
}

// Canonical returns the position with the board in canonical form and MarkA
// to move.
func (gs GameState) Canonical() GameState {
	return GameState{Board: CanonicalForm(gs.Board, gs.Turn), Turn: MarkA}
}

// Hash covers the board and the side to move.
func (gs GameState) Hash() StateHash {
	d := xxhash.New()
	d.Write([]byte(Serialize(gs.Board)))
	d.Write([]byte{byte(gs.Turn)})
	return StateHash(d.Sum64())
}

// Winner returns the glyph of the winning side, or "" while the game is on
// and for a draw.
func (gs GameState) Winner() string {
	switch gs.Outcome() {
	case Win:
		return gs.Turn.String()
	case Loss:
		return gs.Turn.Opponent().String()
	default:
		return ""
	}
}
