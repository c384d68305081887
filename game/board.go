package game

// Mark is the content of a cell. The two non-empty marks are signs, so a mark
// also identifies whose turn it is and flips by negation.
type Mark int8

const (
	Empty Mark = 0
	MarkA Mark = 1
	MarkB Mark = -1
)

// Opponent returns the other side's mark.
func (m Mark) Opponent() Mark {
	return -m
}

func (m Mark) String() string {
	switch m {
	case MarkA:
		return "X"
	case MarkB:
		return "O"
	default:
		return "."
	}
}

// Board is a Rows x Cols grid stored row-major in a flat buffer. Row 0 is the
// top of the board, row Rows-1 the bottom.
//
// Board is a value: engine operations copy the buffer before writing, so a
// Board handed out is never modified afterwards.
type Board struct {
	rows      int
	cols      int
	runLength int
	cells     []Mark
}

// NewBoard returns an empty board, or a *ConfigurationError when the geometry
// is invalid.
func NewBoard(rows, cols, runLength int) (Board, error) {
	if err := validateGeometry(rows, cols, runLength); err != nil {
		return Board{}, err
	}
	return Board{
		rows:      rows,
		cols:      cols,
		runLength: runLength,
		cells:     make([]Mark, rows*cols),
	}, nil
}

// BoardFromCells builds a board from row-major cells. It does not check the
// gravity invariant.
func BoardFromCells(rows, cols, runLength int, cells []Mark) (Board, error) {
	b, err := NewBoard(rows, cols, runLength)
	if err != nil {
		return Board{}, err
	}
	if len(cells) != rows*cols {
		return Board{}, &ConfigurationError{Rows: rows, Cols: cols, RunLength: runLength, Reason: "cell count does not match dimensions"}
	}
	for i, m := range cells {
		if m != Empty && m != MarkA && m != MarkB {
			return Board{}, &ConfigurationError{Rows: rows, Cols: cols, RunLength: runLength, Reason: "unknown mark"}
		}
		b.cells[i] = m
	}
	return b, nil
}

func validateGeometry(rows, cols, runLength int) error {
	switch {
	case runLength < 1:
		return &ConfigurationError{Rows: rows, Cols: cols, RunLength: runLength, Reason: "run length must be positive"}
	case rows < runLength:
		return &ConfigurationError{Rows: rows, Cols: cols, RunLength: runLength, Reason: "rows must be at least the run length"}
	case cols < rows:
		return &ConfigurationError{Rows: rows, Cols: cols, RunLength: runLength, Reason: "cols must be at least rows"}
	}
	return nil
}

func (b Board) Rows() int      { return b.rows }
func (b Board) Cols() int      { return b.cols }
func (b Board) RunLength() int { return b.runLength }

func (b Board) index(row, col int) int {
	return row*b.cols + col
}

// InBounds reports whether (row, col) is a cell of the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the mark at (row, col). It panics when the cell is out of bounds.
func (b Board) At(row, col int) Mark {
	if !b.InBounds(row, col) {
		panic("cell out of bounds")
	}
	return b.cells[b.index(row, col)]
}

// Cells returns a copy of the row-major buffer.
func (b Board) Cells() []Mark {
	cells := make([]Mark, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Copy returns a deep copy of the board.
func (b Board) Copy() Board {
	return Board{
		rows:      b.rows,
		cols:      b.cols,
		runLength: b.runLength,
		cells:     b.Cells(),
	}
}

// with returns a copy of the board with one cell changed.
func (b Board) with(row, col int, m Mark) Board {
	next := b.Copy()
	next.cells[next.index(row, col)] = m
	return next
}

// Equal reports whether both boards have the same geometry and marks.
func (b Board) Equal(other Board) bool {
	if b.rows != other.rows || b.cols != other.cols || b.runLength != other.runLength {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// IsFull reports whether no cell is empty.
func (b Board) IsFull() bool {
	for _, m := range b.cells {
		if m == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding m.
func (b Board) Count(m Mark) int {
	n := 0
	for _, c := range b.cells {
		if c == m {
			n++
		}
	}
	return n
}

// MirrorColumns returns the board with its columns in reverse order.
func (b Board) MirrorColumns() Board {
	mirrored := b.Copy()
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			mirrored.cells[b.index(row, col)] = b.cells[b.index(row, b.cols-1-col)]
		}
	}
	return mirrored
}

// HasGravity reports whether every column's occupied cells form one block
// anchored at the bottom row.
func (b Board) HasGravity() bool {
	for col := 0; col < b.cols; col++ {
		seenEmpty := false
		for row := b.rows - 1; row >= 0; row-- {
			if b.At(row, col) == Empty {
				seenEmpty = true
			} else if seenEmpty {
				return false
			}
		}
	}
	return true
}
