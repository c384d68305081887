package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// PassRow is the row used in "row col" notation for the Pass action.
const PassRow = -1

// FormatAction writes action as "row col". Pass is written with row -1.
func (b Board) FormatAction(action int) string {
	if action == b.Pass() {
		return fmt.Sprintf("%d %d", PassRow, PassRow)
	}
	row, col := b.Decode(action)
	return fmt.Sprintf("%d %d", row, col)
}

// FormatMoves lists the allowed actions of mask, separated by "; ".
func (b Board) FormatMoves(mask Mask) string {
	return strings.Join(lo.Map(mask.Actions(), func(action int, _ int) string {
		return b.FormatAction(action)
	}), "; ")
}

// ParseAction reads "row col" and returns the action id. A row of -1 is Pass
// whatever the column. It returns a *ParseError for anything else that is not
// a cell of the board.
func (b Board) ParseAction(text string) (int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, &ParseError{Input: text, Reason: "expected \"row col\""}
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, &ParseError{Input: text, Reason: "row is not a number"}
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, &ParseError{Input: text, Reason: "col is not a number"}
	}
	if row == PassRow {
		return b.Pass(), nil
	}
	if !b.InBounds(row, col) {
		return 0, &ParseError{Input: text, Reason: "cell is outside the board"}
	}
	return b.Encode(row, col), nil
}

// ParseLegalAction parses text and checks it against mask. It returns a
// *ParseError for malformed text and an *IllegalMoveError when the action is
// not allowed.
func (b Board) ParseLegalAction(text string, mask Mask) (int, error) {
	action, err := b.ParseAction(text)
	if err != nil {
		return 0, err
	}
	if !mask.Allows(action) {
		return 0, &IllegalMoveError{Action: action, Reason: "not a landing cell"}
	}
	return action, nil
}

// Render draws the board with one line per row, top row first, under a header
// of column indices. MarkA is X, MarkB is O and empty cells are dots.
func (b Board) Render() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.cols; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')
	for row := 0; row < b.rows; row++ {
		fmt.Fprintf(&sb, "%2d", row)
		for col := 0; col < b.cols; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.At(row, col).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the board without the header, one row per line.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			sb.WriteString(b.At(row, col).String())
		}
		if row < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard reads the String form back, one row per line. Blank lines and
// surrounding spaces are ignored.
func ParseBoard(text string, runLength int) (Board, error) {
	lines := lo.Filter(lo.Map(strings.Split(text, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	}), func(line string, _ int) bool {
		return line != ""
	})
	if len(lines) == 0 {
		return Board{}, &ParseError{Input: text, Reason: "no rows"}
	}
	rows, cols := len(lines), len(lines[0])
	cells := make([]Mark, 0, rows*cols)
	for _, line := range lines {
		if len(line) != cols {
			return Board{}, &ParseError{Input: text, Reason: "rows have different lengths"}
		}
		for _, ch := range line {
			switch ch {
			case 'X', 'x':
				cells = append(cells, MarkA)
			case 'O', 'o':
				cells = append(cells, MarkB)
			case '.':
				cells = append(cells, Empty)
			default:
				return Board{}, &ParseError{Input: text, Reason: fmt.Sprintf("unknown glyph %q", ch)}
			}
		}
	}
	return BoardFromCells(rows, cols, runLength, cells)
}
