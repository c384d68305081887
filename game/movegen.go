package game

import "github.com/samber/lo"

// Cell is a (row, col) position on the board.
type Cell struct {
	Row int
	Col int
}

// LandingCells returns, for each column that still has room, the lowest empty
// cell of that column. Full columns contribute nothing, so the result is empty
// exactly when the board is full.
func LandingCells(b Board) []Cell {
	cells := make([]Cell, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		for row := b.rows - 1; row >= 0; row-- {
			if b.cells[b.index(row, col)] == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
				break
			}
		}
	}
	return cells
}

// HasAnyMove reports whether some column has an empty top cell.
func HasAnyMove(b Board) bool {
	for col := 0; col < b.cols; col++ {
		if b.cells[b.index(0, col)] == Empty {
			return true
		}
	}
	return false
}

// ActionSize is the number of action ids, the trailing one being Pass.
func (b Board) ActionSize() int {
	return b.rows*b.cols + 1
}

// Pass is the action id used when no column has room.
func (b Board) Pass() int {
	return b.rows * b.cols
}

// Encode maps a cell to its action id. Ids run down each column first.
func (b Board) Encode(row, col int) int {
	return row + b.rows*col
}

// Decode is the inverse of Encode. It does not accept Pass.
func (b Board) Decode(action int) (row, col int) {
	return action % b.rows, action / b.rows
}

// Mask is a legality vector indexed by action id.
type Mask []bool

// Actions returns the ids whose bit is set, in ascending order.
func (m Mask) Actions() []int {
	actions := make([]int, 0, len(m))
	for action, ok := range m {
		if ok {
			actions = append(actions, action)
		}
	}
	return actions
}

// Count returns the number of set bits.
func (m Mask) Count() int {
	return lo.Count(m, true)
}

// Allows reports whether action is in range and set.
func (m Mask) Allows(action int) bool {
	return action >= 0 && action < len(m) && m[action]
}
