package player

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"twg/game"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

// ErrQuit is returned when the human gives up the game.
var ErrQuit = errors.New("game quit")

// LineReader is the part of a readline instance the console reads from.
type LineReader interface {
	Readline() (string, error)
}

// Console asks a human for moves written as "row col".
type Console struct {
	in  LineReader
	out io.Writer
}

func NewConsole(in LineReader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// NewReadlineConsole reads from and writes to a readline instance.
func NewReadlineConsole(l *readline.Instance) *Console {
	return NewConsole(l, l.Stdout())
}

func (c *Console) Name() string {
	return "human"
}

func (c *Console) Play(state game.GameState) (int, error) {
	if state.Outcome().Terminal() {
		return 0, ErrNoMoves
	}
	mask := state.Mask()
	fmt.Fprint(c.out, state.Board.Render())
	fmt.Fprintf(c.out, "Available moves: %s\n", state.Board.FormatMoves(mask))

	for {
		line, err := c.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return 0, ErrQuit
		}
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "quit" {
			return 0, ErrQuit
		}

		action, err := state.Board.ParseLegalAction(line, mask)
		if err != nil {
			log.Debug().Err(err).Str("input", line).Msg("rejected move")
			fmt.Fprintln(c.out, "Invalid")
			continue
		}
		return action, nil
	}
}
