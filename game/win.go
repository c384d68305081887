package game

// lineWinner scans line as a cycle and returns the mark of the first run of n
// equal non-empty cells that starts in line. Positions after the first run are
// not inspected, so a later run of the other mark is never reported. Empty
// means the line has no run.
func lineWinner(line []Mark, n int) Mark {
	size := len(line)
	for i := 0; i < size; i++ {
		v := line[i]
		if v == Empty {
			continue
		}
		j := 1
		for ; j < n; j++ {
			if line[(i+j)%size] != v {
				break
			}
		}
		if j == n {
			return v
		}
	}
	return Empty
}

// IsWin reports whether any row, column or toroidal diagonal family holds a
// run of RunLength cells owned by m.
func IsWin(b Board, m Mark) bool {
	if m == Empty {
		return false
	}
	for _, line := range b.lines() {
		if lineWinner(line, b.runLength) == m {
			return true
		}
	}
	return false
}

// lines returns every sequence the win check looks at: each column top to
// bottom, each row left to right, then the two combined diagonal sequences.
func (b Board) lines() [][]Mark {
	lines := make([][]Mark, 0, b.cols+b.rows+2)
	for col := 0; col < b.cols; col++ {
		column := make([]Mark, b.rows)
		for row := 0; row < b.rows; row++ {
			column[row] = b.cells[b.index(row, col)]
		}
		lines = append(lines, column)
	}
	for row := 0; row < b.rows; row++ {
		start := b.index(row, 0)
		lines = append(lines, b.cells[start:start+b.cols:start+b.cols])
	}
	return append(lines, b.diagonals(false), b.diagonals(true))
}

// diagonals concatenates every wrapped down-right diagonal into one sequence.
// The diagonal starting at column k visits (r, (r+k) mod Cols) for each row r;
// they are laid out as k = 0, Cols-1, Cols-2, ..., 1. With flipped set the grid
// is mirrored vertically first, which yields the down-left family.
func (b Board) diagonals(flipped bool) []Mark {
	seq := make([]Mark, 0, b.rows*b.cols)
	appendDiagonal := func(k int) {
		for r := 0; r < b.rows; r++ {
			row := r
			if flipped {
				row = b.rows - 1 - r
			}
			seq = append(seq, b.cells[b.index(row, (r+k)%b.cols)])
		}
	}
	appendDiagonal(0)
	for k := b.cols - 1; k >= 1; k-- {
		appendDiagonal(k)
	}
	return seq
}
