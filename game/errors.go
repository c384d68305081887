package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidNotation = errors.New("invalid notation")
)

// ConfigurationError is returned when a board cannot be built from the given
// geometry. It is fatal: no state exists afterwards.
type ConfigurationError struct {
	Rows      int
	Cols      int
	RunLength int
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %dx%d (run %d): %s", e.Rows, e.Cols, e.RunLength, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfig }

// IllegalMoveError is returned when an action cannot be applied. The caller is
// expected to ask for another action.
type IllegalMoveError struct {
	Action int
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal action %d: %s", e.Action, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }

// ParseError is returned by ParseAction for text that is not "row col".
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidNotation }
