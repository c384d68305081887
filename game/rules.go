package game

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// DrawValue is the value reported for a drawn game. It is non-zero so that
// consumers can tell a finished draw apart from an unfinished game.
const DrawValue = 1e-4

// Outcome is the result of a position from the point of view of one side.
type Outcome int

const (
	Ongoing Outcome = iota
	Win
	Loss
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Value is the scalar form used by search: 0, 1, -1 or DrawValue.
func (o Outcome) Value() float64 {
	switch o {
	case Win:
		return 1
	case Loss:
		return -1
	case Draw:
		return DrawValue
	default:
		return 0
	}
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o != Ongoing
}

// Invert returns the same outcome seen by the other side.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return o
	}
}

// InitialState returns an empty board, or a *ConfigurationError when rows is
// below runLength or cols below rows.
func InitialState(rows, cols, runLength int) (Board, error) {
	return NewBoard(rows, cols, runLength)
}

// ApplyAction places turn's mark for action and hands the move to the other
// side. Pass leaves the board as is. The target is not checked against the
// landing cells; actions must come from LandingCells or ValidActionMask.
// On error the input board is returned unchanged.
func ApplyAction(b Board, turn Mark, action int) (Board, Mark, error) {
	if action == b.Pass() {
		return b, turn.Opponent(), nil
	}
	if action < 0 || action >= b.Pass() {
		return b, turn, &IllegalMoveError{Action: action, Reason: "out of range"}
	}
	row, col := b.Decode(action)
	if b.cells[b.index(row, col)] != Empty {
		return b, turn, &IllegalMoveError{Action: action, Reason: fmt.Sprintf("cell %d %d is occupied", row, col)}
	}
	return b.with(row, col, turn), turn.Opponent(), nil
}

// ValidActionMask marks every landing cell, and Pass when there is none.
// The landing cells do not depend on the sign of turn, so the mask is the
// same for both sides.
func ValidActionMask(b Board, turn Mark) Mask {
	mask := make(Mask, b.ActionSize())
	cells := LandingCells(CanonicalForm(b, turn))
	if len(cells) == 0 {
		mask[b.Pass()] = true
		return mask
	}
	for _, c := range cells {
		mask[b.Encode(c.Row, c.Col)] = true
	}
	return mask
}

// TerminalValue judges the board for turn. A win for turn is checked first,
// then a win for the opponent, then whether any column has room.
func TerminalValue(b Board, turn Mark) Outcome {
	if IsWin(b, turn) {
		return Win
	}
	if IsWin(b, turn.Opponent()) {
		return Loss
	}
	if HasAnyMove(b) {
		return Ongoing
	}
	return Draw
}

// CanonicalForm multiplies every mark by turn, so that MarkA is always the side
// to move. Applying it twice with the same turn gives the original board.
func CanonicalForm(b Board, turn Mark) Board {
	canonical := b.Copy()
	for i, m := range canonical.cells {
		canonical.cells[i] = m * turn
	}
	return canonical
}

// Symmetry is a board paired with an action distribution over the same board.
type Symmetry struct {
	Board  Board
	Policy []float64
}

// Symmetries returns the pair itself and its left-right mirror. The spatial
// part of the policy is mirrored along with the columns; the Pass entry stays.
func Symmetries(b Board, policy []float64) ([]Symmetry, error) {
	if len(policy) != b.ActionSize() {
		return nil, fmt.Errorf("policy has %d entries, want %d", len(policy), b.ActionSize())
	}
	original := make([]float64, len(policy))
	copy(original, policy)

	mirrored := make([]float64, len(policy))
	for col := 0; col < b.cols; col++ {
		for row := 0; row < b.rows; row++ {
			mirrored[b.Encode(row, col)] = policy[b.Encode(row, b.cols-1-col)]
		}
	}
	mirrored[b.Pass()] = policy[b.Pass()]

	return []Symmetry{
		{Board: b.Copy(), Policy: original},
		{Board: b.MirrorColumns(), Policy: mirrored},
	}, nil
}

// Key is an opaque memoization key for a board.
type Key string

// Serialize encodes the board losslessly: the dimensions, the run length and
// then one byte per cell (0 empty, 1 MarkA, 2 MarkB).
func Serialize(b Board) Key {
	buf := make([]byte, 0, 3*binary.MaxVarintLen32+len(b.cells))
	buf = binary.AppendUvarint(buf, uint64(b.rows))
	buf = binary.AppendUvarint(buf, uint64(b.cols))
	buf = binary.AppendUvarint(buf, uint64(b.runLength))
	for _, m := range b.cells {
		switch m {
		case MarkA:
			buf = append(buf, 1)
		case MarkB:
			buf = append(buf, 2)
		default:
			buf = append(buf, 0)
		}
	}
	return Key(buf)
}

// Hash is a 64-bit digest of the serialized board.
func Hash(b Board) uint64 {
	return xxhash.Sum64String(string(Serialize(b)))
}
