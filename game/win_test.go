package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineWinner(t *testing.T) {
	X, O, E := MarkA, MarkB, Empty

	t.Run("no run", func(t *testing.T) {
		require.Equal(t, Empty, lineWinner([]Mark{X, X, X, O, X, X, E}, 4))
	})

	t.Run("plain run", func(t *testing.T) {
		require.Equal(t, O, lineWinner([]Mark{E, O, O, O, O, X, E}, 4))
	})

	t.Run("run across the end of the line", func(t *testing.T) {
		require.Equal(t, X, lineWinner([]Mark{X, X, E, E, E, X, X}, 4))
	})

	t.Run("empty cells never form a run", func(t *testing.T) {
		require.Equal(t, Empty, lineWinner(make([]Mark, 6), 4))
	})

	t.Run("only the first run is reported", func(t *testing.T) {
		require.Equal(t, O, lineWinner([]Mark{O, O, O, O, X, X, X, X}, 4))
		require.Equal(t, X, lineWinner([]Mark{E, X, X, X, X, O, O, O, O}, 4))
	})
}

func TestIsWin(t *testing.T) {
	for _, tc := range []struct {
		name  string
		rows  []string
		xWins bool
		oWins bool
	}{
		{
			name: "nothing",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"XX..XX.",
			},
		},
		{
			name: "row wrapping around the side",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"XX...XX",
			},
			xWins: true,
		},
		{
			name: "column wrapping from bottom to top",
			rows: []string{
				"X......",
				"O......",
				"O......",
				"X......",
				"X......",
				"X......",
			},
			xWins: true,
		},
		{
			name: "down-right diagonal without wrap",
			rows: []string{
				".......",
				".......",
				"O......",
				".O.....",
				"..O....",
				"...O...",
			},
			oWins: true,
		},
		{
			name: "down-right diagonal wrapping across columns",
			rows: []string{
				".....X.",
				"......X",
				"X......",
				".X.....",
				".......",
				".......",
			},
			xWins: true,
		},
		{
			name: "down-right diagonal wrapping from bottom to top",
			rows: []string{
				"X......",
				".X.....",
				"..X....",
				".......",
				".......",
				"......X",
			},
			xWins: true,
		},
		{
			name: "down-left diagonal without wrap",
			rows: []string{
				".......",
				".......",
				"...X...",
				"..X....",
				".X.....",
				"X......",
			},
			xWins: true,
		},
		{
			name: "down-left diagonal wrapping across columns",
			rows: []string{
				".......",
				".......",
				".O.....",
				"O......",
				"......O",
				".....O.",
			},
			oWins: true,
		},
		{
			name: "run spanning two partial diagonals of the combined sequence",
			rows: []string{
				"......X",
				"X......",
				".......",
				".......",
				"....X..",
				".....X.",
			},
			xWins: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, 4, tc.rows...)
			require.Equal(t, tc.xWins, IsWin(b, MarkA))
			require.Equal(t, tc.oWins, IsWin(b, MarkB))
		})
	}

	t.Run("empty mark never wins", func(t *testing.T) {
		b, err := NewBoard(4, 4, 4)
		require.NoError(t, err)
		require.False(t, IsWin(b, Empty))
	})

	t.Run("earlier run of the other mark hides a later run", func(t *testing.T) {
		b := mustBoard(t, 4,
			"........",
			"........",
			"........",
			"OOOOXXXX",
		)
		require.True(t, IsWin(b, MarkB))
		require.False(t, IsWin(b, MarkA))
		require.Equal(t, Loss, TerminalValue(b, MarkA))
	})
}

func TestDiagonals(t *testing.T) {
	const rows, cols = 3, 4
	// position of each starting column k in the combined sequence
	order := map[int]int{0: 0, 3: 1, 2: 2, 1: 3}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells := make([]Mark, rows*cols)
			cells[row*cols+col] = MarkA
			b, err := BoardFromCells(rows, cols, 3, cells)
			require.NoError(t, err)

			k := ((col-row)%cols + cols) % cols
			seq := b.diagonals(false)
			require.Len(t, seq, rows*cols)
			require.Equal(t, MarkA, seq[order[k]*rows+row], "cell %d %d", row, col)
			require.Equal(t, 1, countMark(seq, MarkA))

			flippedK := ((col-(rows-1-row))%cols + cols) % cols
			flipped := b.diagonals(true)
			require.Equal(t, MarkA, flipped[order[flippedK]*rows+(rows-1-row)], "flipped cell %d %d", row, col)
		}
	}
}

func countMark(line []Mark, m Mark) int {
	n := 0
	for _, v := range line {
		if v == m {
			n++
		}
	}
	return n
}
