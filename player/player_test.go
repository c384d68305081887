package player

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"twg/game"
	"twg/searcher"

	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func mustState(t *testing.T, text string, turn game.Mark) game.GameState {
	t.Helper()
	b, err := game.ParseBoard(text, 4)
	require.NoError(t, err)
	return game.GameState{Board: b, Turn: turn}
}

const blockWin = ".......\n" +
	".......\n" +
	".......\n" +
	".......\n" +
	".......\n" +
	"XXX..OO"

func TestRandom(t *testing.T) {
	t.Run("plays legal actions", func(t *testing.T) {
		state, err := game.NewGameState(6, 7, 4)
		require.NoError(t, err)
		p := NewRandom()
		require.Equal(t, "random", p.Name())

		mask := state.Mask()
		for i := 0; i < 50; i++ {
			action, err := p.Play(state)
			require.NoError(t, err)
			require.True(t, mask.Allows(action))
		}
	})

	t.Run("fails without moves", func(t *testing.T) {
		b, err := game.ParseBoard("XO\nOX", 2)
		require.NoError(t, err)
		_, err = NewRandom().Play(game.GameState{Board: b, Turn: game.MarkA})
		require.ErrorIs(t, err, ErrNoMoves)
	})
}

func TestSearch(t *testing.T) {
	t.Run("blocks as the second player", func(t *testing.T) {
		state := mustState(t, blockWin, game.MarkB)
		p := NewSearch(searcher.NewMCTS(4, searcher.WithEpisodes(6000), searcher.WithMetrics()))

		action, err := p.Play(state)
		require.NoError(t, err)
		require.Equal(t, state.Board.Encode(5, 3), action)
		require.Equal(t, 6000, p.LastSearch().Episodes)
	})

	t.Run("reuses its tree after observing both moves", func(t *testing.T) {
		state, err := game.NewGameState(6, 7, 4)
		require.NoError(t, err)
		p := NewSearch(searcher.NewMCTS(1, searcher.WithEpisodes(500), searcher.WithMetrics()))

		action, err := p.Play(state)
		require.NoError(t, err)
		require.True(t, p.LastSearch().IsTreeReset)
		state, err = state.Apply(action)
		require.NoError(t, err)
		p.Observe(action)

		reply := state.Mask().Actions()[0]
		state, err = state.Apply(reply)
		require.NoError(t, err)
		p.Observe(reply)

		_, err = p.Play(state)
		require.NoError(t, err)
		require.False(t, p.LastSearch().IsTreeReset)
	})

	t.Run("stops tracking after an unknown action", func(t *testing.T) {
		state, err := game.NewGameState(4, 4, 4)
		require.NoError(t, err)
		p := NewSearch(searcher.NewMCTS(1, searcher.WithEpisodes(20)))

		_, err = p.Play(state)
		require.NoError(t, err)
		p.Observe(-5)
		require.False(t, p.tracked)
		require.Empty(t, p.lineage)
	})

	t.Run("argmax breaks ties on the lower action", func(t *testing.T) {
		policy := map[game.Move]float64{
			game.GameMove{Action: 9}: 0.4,
			game.GameMove{Action: 3}: 0.4,
			game.GameMove{Action: 1}: 0.2,
		}
		require.Equal(t, 3, argmax(policy))
	})
}

func TestConsole(t *testing.T) {
	state, err := game.NewGameState(6, 7, 4)
	require.NoError(t, err)

	t.Run("retries until a legal move is given", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(&scriptedReader{lines: []string{"hello", "4 2", " 5 2 "}}, &out)

		action, err := c.Play(state)
		require.NoError(t, err)
		require.Equal(t, state.Board.Encode(5, 2), action)
		require.Equal(t, 2, strings.Count(out.String(), "Invalid\n"))
		require.Contains(t, out.String(), "Available moves: 5 0; 5 1;")
	})

	t.Run("quit aborts the game", func(t *testing.T) {
		c := NewConsole(&scriptedReader{lines: []string{"quit"}}, io.Discard)
		_, err := c.Play(state)
		require.ErrorIs(t, err, ErrQuit)
	})

	t.Run("end of input aborts the game", func(t *testing.T) {
		c := NewConsole(&scriptedReader{}, io.Discard)
		_, err := c.Play(state)
		require.True(t, errors.Is(err, ErrQuit))
	})
}
