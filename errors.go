package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
)

// LexError is returned when the input contains a character that does not
// start any token.
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized character %q at position %d", e.Char, e.Pos)
}

// ParseError is returned when the token stream does not match the grammar.
// Want is meaningful only when the parser required one specific kind.
type ParseError struct {
	Pos   int
	Want  Kind
	Found Kind
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

type ArithmeticError struct {
	Pos int
	Err error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}
