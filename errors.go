package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports input that does not match a puzzle's
	// line grammar.
	ErrMalformedInput = errors.New("malformed input")

	// ErrMissingValue reports a line that lacks content the puzzle
	// guarantees is present.
	ErrMissingValue = errors.New("missing expected value")
)

// ParseError describes where in the input a solver gave up.
type ParseError struct {
	Line  int    // 1-based
	Col   int    // 0-based byte offset within the line
	Input string // the offending line
	Msg   string
	Err   error // ErrMalformedInput, ErrMissingValue or something wrapping them
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s: %q: %v", e.Line, e.Col, e.Msg, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
