package gocalc

import (
	"fmt"
	"math/big"
)

type Kind int

const (
	KindInteger Kind = iota
	KindPlus
	KindMinus
	KindMultiply
	KindDivide
	KindLParen
	KindRParen
	KindEOF
)

var kindNames = map[Kind]string{
	KindInteger:  "INTEGER",
	KindPlus:     "PLUS",
	KindMinus:    "MINUS",
	KindMultiply: "MULTIPLY",
	KindDivide:   "DIVIDE",
	KindLParen:   "'('",
	KindRParen:   "')'",
	KindEOF:      "EOF",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit. Value is set only for KindInteger.
type Token struct {
	Kind  Kind
	Value *big.Int
	Pos   int
}

func (t Token) String() string {
	switch t.Kind {
	case KindInteger:
		return fmt.Sprintf("Token(%v, %v)", t.Kind, t.Value)
	case KindEOF:
		return fmt.Sprintf("Token(%v)", t.Kind)
	}
	return fmt.Sprintf("Token(%v, %q)", t.Kind, symbols[t.Kind])
}

var symbols = map[Kind]rune{
	KindPlus:     '+',
	KindMinus:    '-',
	KindMultiply: '*',
	KindDivide:   '/',
	KindLParen:   '(',
	KindRParen:   ')',
}
