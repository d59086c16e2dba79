package gocalc

import (
	"math/big"
	"strings"
)

// Interpreter evaluates while it parses:
//
//	expr   := term ( (PLUS | MINUS) term )*
//	term   := factor ( (MULTIPLY | DIVIDE) factor )*
//	factor := INTEGER | LPAREN expr RPAREN
//
// An Interpreter is good for a single input. After an error it must be
// discarded.
type Interpreter struct {
	lexer *Lexer
	tok   Token
}

func NewInterpreter(lexer *Lexer) (*Interpreter, error) {
	tok, err := lexer.NextToken()
	if err != nil {
		return nil, err
	}
	return &Interpreter{
		lexer: lexer,
		tok:   tok,
	}, nil
}

// Current returns the lookahead token.
func (in *Interpreter) Current() Token {
	return in.tok
}

func (in *Interpreter) eat(kind Kind) error {
	if in.tok.Kind != kind {
		return &ParseError{
			Pos:   in.tok.Pos,
			Want:  kind,
			Found: in.tok.Kind,
			Msg:   "expected " + kind.String() + ", found " + in.tok.Kind.String(),
		}
	}
	tok, err := in.lexer.NextToken()
	if err != nil {
		return err
	}
	in.tok = tok
	return nil
}

func (in *Interpreter) unexpected() error {
	msg := "unexpected token " + in.tok.String()
	if in.tok.Kind == KindEOF {
		msg = "unexpected end of input"
	}
	return &ParseError{
		Pos:   in.tok.Pos,
		Found: in.tok.Kind,
		Msg:   msg,
	}
}

func (in *Interpreter) Factor() (*big.Rat, error) {
	tok := in.tok
	switch tok.Kind {
	case KindInteger:
		if err := in.eat(KindInteger); err != nil {
			return nil, err
		}
		return new(big.Rat).SetInt(tok.Value), nil
	case KindLParen:
		if err := in.eat(KindLParen); err != nil {
			return nil, err
		}
		ret, err := in.Expr()
		if err != nil {
			return nil, err
		}
		if err := in.eat(KindRParen); err != nil {
			return nil, err
		}
		return ret, nil
	}
	return nil, in.unexpected()
}

// binary folds operands of one precedence level from the left.
func (in *Interpreter) binary(prec Prec, operand func() (*big.Rat, error)) (*big.Rat, error) {
	ret, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := lookupOp(in.tok.Kind, prec)
		if !ok {
			return ret, nil
		}
		tok := in.tok
		if err := in.eat(tok.Kind); err != nil {
			return nil, err
		}
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		ret, err = op.fn(ret, rhs)
		if err != nil {
			return nil, &ArithmeticError{Pos: tok.Pos, Err: err}
		}
	}
}

func (in *Interpreter) Term() (*big.Rat, error) {
	return in.binary(PrecTerm, in.Factor)
}

func (in *Interpreter) Expr() (*big.Rat, error) {
	return in.binary(PrecExpr, in.Term)
}

// Eval evaluates a whole expression and fails if any input is left over.
func (in *Interpreter) Eval() (*big.Rat, error) {
	ret, err := in.Expr()
	if err != nil {
		return nil, err
	}
	if in.tok.Kind != KindEOF {
		return nil, in.unexpected()
	}
	return ret, nil
}

// Evaluate evaluates s with a fresh lexer and interpreter.
func Evaluate(s string) (*big.Rat, error) {
	in, err := NewInterpreter(NewLexer(strings.NewReader(s)))
	if err != nil {
		return nil, err
	}
	return in.Eval()
}
