// Package session runs one conversation between a human and the engine. The
// caller owns each Session; nothing here keeps per-user state.
package session

import (
	"fmt"
	"strings"
	"twg/game"
	"twg/player"

	"github.com/rs/zerolog/log"
)

type Stage int

const (
	Entry Stage = iota
	AwaitingMove
	Ended
)

func (s Stage) String() string {
	switch s {
	case Entry:
		return "entry"
	case AwaitingMove:
		return "awaiting-move"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

const (
	Hello     = "Hello! You can play tictactoe on torus with gravity with me if you type /play."
	Welcome   = "Welcome! Lets play TicTacToe on torus with gravity! Loading the game."
	Loaded    = "Game loaded. Type anything to continue. Type /cancel if you want to end the game"
	Invalid   = "Action is invalid! Make another"
	MyMove    = "My move!"
	YouWon    = "You won!"
	GameOver  = "Humanity is doomed! Game over!"
	Draw      = "Draw!"
	Cancelled = "Game cancelled."
	PlayAgain = "Type /play to start a new game."
)

// Session is one game against an AI player.
type Session struct {
	rows       int
	cols       int
	runLength  int
	humanFirst bool
	ai         player.Player

	State game.GameState
	Human game.Mark
	Stage Stage
}

func New(rows, cols, runLength int, ai player.Player, humanFirst bool) (*Session, error) {
	s := &Session{
		rows:       rows,
		cols:       cols,
		runLength:  runLength,
		humanFirst: humanFirst,
		ai:         ai,
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset() error {
	state, err := game.NewGameState(s.rows, s.cols, s.runLength)
	if err != nil {
		return err
	}
	s.State = state
	s.Human = game.MarkA
	if !s.humanFirst {
		s.Human = game.MarkB
	}
	s.Stage = Entry
	return nil
}

// Start greets the human and waits for any text to show the board.
func (s *Session) Start() []string {
	return []string{Welcome, Loaded}
}

// Handle answers one line of input.
func (s *Session) Handle(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	switch text {
	case "/start":
		return []string{Hello}, nil
	case "/cancel":
		s.Stage = Ended
		return []string{Cancelled}, nil
	case "/play":
		if err := s.reset(); err != nil {
			return nil, err
		}
		return s.Start(), nil
	}

	switch s.Stage {
	case Entry:
		return s.run(nil)
	case AwaitingMove:
		return s.move(text)
	default:
		return []string{PlayAgain}, nil
	}
}

func (s *Session) move(text string) ([]string, error) {
	action, err := s.State.Board.ParseLegalAction(text, s.State.Mask())
	if err != nil {
		log.Debug().Err(err).Str("input", text).Msg("action is not valid")
		return []string{Invalid}, nil
	}
	if err := s.apply(action); err != nil {
		return nil, err
	}
	return s.run(nil)
}

// run shows the board and either asks the human for a move, lets the AI move
// or announces the result.
func (s *Session) run(replies []string) ([]string, error) {
	replies = append(replies, s.State.Board.Render())

	outcome := game.TerminalValue(s.State.Board, s.Human)
	if outcome.Terminal() {
		s.Stage = Ended
		switch outcome {
		case game.Win:
			return append(replies, YouWon), nil
		case game.Loss:
			return append(replies, GameOver), nil
		default:
			return append(replies, Draw), nil
		}
	}

	if s.State.Turn == s.Human {
		s.Stage = AwaitingMove
		moves := s.State.Board.FormatMoves(s.State.Mask())
		return append(replies, "Make a move, available moves: "+moves), nil
	}

	action, err := s.ai.Play(s.State)
	if err != nil {
		s.Stage = Ended
		return nil, fmt.Errorf("%s failed to move: %w", s.ai.Name(), err)
	}
	if !s.State.Mask().Allows(action) {
		s.Stage = Ended
		log.Error().Int("action", action).Msg("action is not valid")
		return nil, &game.IllegalMoveError{Action: action, Reason: "not a landing cell"}
	}
	if err := s.apply(action); err != nil {
		s.Stage = Ended
		return nil, err
	}
	log.Debug().Str("move", s.State.Board.FormatAction(action)).Msg("ai moved")
	return s.run(append(replies, MyMove))
}

func (s *Session) apply(action int) error {
	next, err := s.State.Apply(action)
	if err != nil {
		return err
	}
	s.State = next
	if observer, ok := s.ai.(player.Observer); ok {
		observer.Observe(action)
	}
	return nil
}
