// Package parser turns raw move text into a structured, range-unchecked move.
//
// Two forms are accepted:
//
//	t<N>                  lay hand card N on the table
//	<N>;<I1>+<I2>+...     play hand card N capturing table cards I1, I2, ...
//
// Indices are 0-based decimal numbers without sign or leading zeros.
package parser

import (
	"errors"
	"fmt"
	"strconv"
)

// maxDigits bounds an index so it always fits an int.
const maxDigits = 9

// ErrSyntax is matched by every error returned from Parse.
var ErrSyntax = errors.New("malformed move")

// SyntaxError describes where and why move text failed to parse.
type SyntaxError struct {
	Input  string
	Pos    int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed move %q at offset %d: %s", e.Input, e.Pos, e.Reason)
}

// Is lets errors.Is(err, ErrSyntax) match any SyntaxError.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ParsedMove is a syntactically valid move. Table is nil for the table-drop form.
type ParsedMove struct {
	Hand  int
	Table []int
}

// IsTableDrop reports whether the move lays a card on the table.
func (m ParsedMove) IsTableDrop() bool {
	return m.Table == nil
}

type scanner struct {
	input string
	pos   int
}

// Parse validates the grammar only; it does not know how many cards exist.
func Parse(input string) (ParsedMove, error) {
	s := &scanner{input: input}
	if s.peek() == 't' {
		s.pos++
		n, err := s.number()
		if err != nil {
			return ParsedMove{}, err
		}
		if err := s.end(); err != nil {
			return ParsedMove{}, err
		}
		return ParsedMove{Hand: n}, nil
	}

	hand, err := s.number()
	if err != nil {
		return ParsedMove{}, err
	}
	if s.peek() != ';' {
		return ParsedMove{}, s.fail("expected ';' after hand index")
	}
	s.pos++

	table := []int{}
	for {
		n, err := s.number()
		if err != nil {
			return ParsedMove{}, err
		}
		table = append(table, n)
		if s.peek() != '+' {
			break
		}
		s.pos++
	}
	if err := s.end(); err != nil {
		return ParsedMove{}, err
	}
	return ParsedMove{Hand: hand, Table: table}, nil
}

// peek returns the next byte, or 0 at the end of input.
func (s *scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) number() (int, error) {
	start := s.pos
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
	}
	digits := s.input[start:s.pos]
	switch {
	case len(digits) == 0:
		s.pos = start
		return 0, s.fail("expected an index")
	case len(digits) > 1 && digits[0] == '0':
		s.pos = start
		return 0, s.fail("leading zero in index")
	case len(digits) > maxDigits:
		s.pos = start
		return 0, s.fail("index too large")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		s.pos = start
		return 0, s.fail(err.Error())
	}
	return n, nil
}

func (s *scanner) end() error {
	if s.pos != len(s.input) {
		return s.fail("unexpected trailing input")
	}
	return nil
}

func (s *scanner) fail(reason string) error {
	return &SyntaxError{Input: s.input, Pos: s.pos, Reason: reason}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
