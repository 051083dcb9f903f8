package game

import (
	"errors"
	"fmt"
)

// MoveErrorKind classifies a rejected move.
type MoveErrorKind int

const (
	ParseFailure MoveErrorKind = iota
	HandIndexInvalid
	TableIndexInvalid
	MismatchedValues
)

func (k MoveErrorKind) String() string {
	switch k {
	case ParseFailure:
		return "PARSE_FAILURE"
	case HandIndexInvalid:
		return "HAND_INDEX_INVALID"
	case TableIndexInvalid:
		return "TABLE_INDEX_INVALID"
	case MismatchedValues:
		return "MISMATCHED_VALUES"
	default:
		return "UNKNOWN"
	}
}

// Sentinels matched by MoveError through errors.Is.
var (
	ErrParse            = errors.New("move could not be parsed")
	ErrHandIndex        = errors.New("hand index invalid")
	ErrTableIndex       = errors.New("table index invalid")
	ErrMismatchedValues = errors.New("mismatched values")
)

// Session-level errors.
var (
	ErrMatchOver        = errors.New("match is over")
	ErrMatchNotOver     = errors.New("match is not over yet")
	ErrMatchNotRecorded = errors.New("match has not been recorded")
	ErrGameOver         = errors.New("game is over")
)

// MoveError reports why a move was rejected. No state changes when one is returned.
type MoveError struct {
	Kind  MoveErrorKind
	Input string
	Err   error // underlying cause, e.g. a *parser.SyntaxError
}

func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
	}
	return fmt.Sprintf("%s: %q", e.sentinel(), e.Input)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *MoveError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *MoveError) sentinel() error {
	switch e.Kind {
	case ParseFailure:
		return ErrParse
	case HandIndexInvalid:
		return ErrHandIndex
	case TableIndexInvalid:
		return ErrTableIndex
	default:
		return ErrMismatchedValues
	}
}

func newMoveError(kind MoveErrorKind, input string, err error) *MoveError {
	return &MoveError{Kind: kind, Input: input, Err: err}
}

func newMoveErrorf(kind MoveErrorKind, input string, format string, args ...interface{}) *MoveError {
	return &MoveError{Kind: kind, Input: input, Err: fmt.Errorf(format, args...)}
}
