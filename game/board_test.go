package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustBoard builds a board from rows of X, O and '.' glyphs.
func mustBoard(t *testing.T, runLength int, rows ...string) Board {
	t.Helper()
	b, err := ParseBoard(strings.Join(rows, "\n"), runLength)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("rejects invalid geometry", func(t *testing.T) {
		for _, tc := range []struct {
			name                  string
			rows, cols, runLength int
		}{
			{"rows below run length", 3, 7, 4},
			{"cols below rows", 6, 5, 4},
			{"zero run length", 4, 4, 0},
		} {
			_, err := NewBoard(tc.rows, tc.cols, tc.runLength)
			require.Error(t, err, tc.name)
			require.True(t, errors.Is(err, ErrInvalidConfig), tc.name)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), tc.name)
			require.Equal(t, tc.rows, cfgErr.Rows)
			require.Equal(t, tc.cols, cfgErr.Cols)
		}
	})

	t.Run("accepts square and wide boards", func(t *testing.T) {
		b, err := NewBoard(4, 4, 4)
		require.NoError(t, err)
		require.Equal(t, 4, b.Rows())
		require.Equal(t, 4, b.Cols())
		require.Equal(t, 16, b.Count(Empty))

		b, err = NewBoard(6, 7, 4)
		require.NoError(t, err)
		require.Equal(t, 42, b.Count(Empty))
		require.Equal(t, 43, b.ActionSize())
	})
}

func TestBoardFromCells(t *testing.T) {
	t.Run("rejects wrong cell count", func(t *testing.T) {
		_, err := BoardFromCells(4, 4, 4, make([]Mark, 15))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects unknown marks", func(t *testing.T) {
		cells := make([]Mark, 16)
		cells[3] = 2
		_, err := BoardFromCells(4, 4, 4, cells)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("does not alias the input", func(t *testing.T) {
		cells := make([]Mark, 16)
		b, err := BoardFromCells(4, 4, 4, cells)
		require.NoError(t, err)
		cells[0] = MarkA
		require.Equal(t, Empty, b.At(0, 0))
	})
}

func TestBoardCopy(t *testing.T) {
	b := mustBoard(t, 4,
		"....",
		"....",
		"....",
		"X..O",
	)
	c := b.Copy()
	require.True(t, b.Equal(c))

	next := c.with(2, 0, MarkB)
	require.Equal(t, Empty, c.At(2, 0), "with must not write through to the source")
	require.Equal(t, MarkB, next.At(2, 0))
	require.False(t, next.Equal(b))
}

func TestMirrorColumns(t *testing.T) {
	b := mustBoard(t, 4,
		".....",
		".....",
		"O....",
		"XX..O",
	)
	mirrored := b.MirrorColumns()
	require.Equal(t, "\n"+strings.Join([]string{
		".....",
		".....",
		"....O",
		"O..XX",
	}, "\n"), "\n"+mirrored.String())
	require.True(t, b.Equal(mirrored.MirrorColumns()))
}

func TestHasGravity(t *testing.T) {
	require.True(t, mustBoard(t, 4,
		"....",
		"....",
		"O...",
		"XX.O",
	).HasGravity())

	require.False(t, mustBoard(t, 4,
		"....",
		"X...",
		"....",
		"O...",
	).HasGravity())
}
