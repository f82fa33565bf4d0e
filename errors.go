// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safedec

import (
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("safedec")

	// ErrDivisionByZero is returned, when a denominator of zero is requested.
	ErrDivisionByZero = Error.New("division by zero")
	// ErrBadFloat is returned for infinities and not-a-numbers.
	ErrBadFloat = Error.New("bad float number")
)

// ParseError describes a failed parse.
type ParseError struct {
	// Input is the string being parsed.
	Input string
	// Pos is the 1-based position of the offending byte.
	Pos int
	Msg string
}

func (pe *ParseError) Error() string {
	return pe.Msg + fmt.Sprintf(" at pos %d", pe.Pos)
}

func newParseError(input string, msg string, pos int) error {
	return Error.Wrap(fmt.Errorf("parsing failed: %w", &ParseError{Input: input, Pos: pos, Msg: msg}))
}
