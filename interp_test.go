package gocalc

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "0", want: "0"},
		{input: "3", want: "3"},
		{input: "2 + 3 * 4", want: "14"},
		{input: "(2 + 3) * 4", want: "20"},
		{input: "10 - 2 - 3", want: "5"},
		{input: "100 / 10 / 5", want: "2"},
		{input: "2 * 3 - 4 / 2", want: "4"},
		{input: "1 + (12 - 3) / (3 * 3)", want: "2"},
		{input: "1+   (12 -3) /   (3*3)", want: "2"},
		{input: "7 / 2", want: "7/2"},
		{input: "1 / 3 + 1 / 6", want: "1/2"},
		{input: "2 - 5", want: "-3"},
		{input: "((((1))))", want: "1"},
		{input: "6 / 4 * 2", want: "3"},
		{input: "99999999999999999999 + 1", want: "100000000000000000000"},
	}
	for _, test := range tests {
		got, err := Evaluate(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if s := FormatNumber(got); s != test.want {
			t.Errorf("want %s for %q but got %s", test.want, test.input, s)
		}
	}
}

func TestEvaluateInteger(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 10, 255, 65536, 1 << 40, 9223372036854775807} {
		got, err := Evaluate(strconv.FormatInt(n, 10))
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(new(big.Rat).SetInt64(n)) != 0 {
			t.Errorf("want %d but got %v", n, got)
		}
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, input := range []string{"5 / 0", "1 / (2 - 2)", "0 / 0", "3 * 4 / (1 - 1) + 2"} {
		_, err := Evaluate(input)
		var ae *ArithmeticError
		if !errors.As(err, &ae) {
			t.Errorf("want ArithmeticError for %q but got %v", input, err)
			continue
		}
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("want ErrDivisionByZero for %q but got %v", input, err)
		}
	}
}

func TestEvaluateParseError(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		found Kind
		msg   string
	}{
		{input: "(2 + 3", pos: 6, found: KindEOF, msg: "expected ')', found EOF"},
		{input: "2 +", pos: 3, found: KindEOF, msg: "unexpected end of input"},
		{input: ")", pos: 0, found: KindRParen, msg: "unexpected token Token(')', ')')"},
		{input: "* 2", pos: 0, found: KindMultiply, msg: "unexpected token Token(MULTIPLY, '*')"},
		{input: "1 2", pos: 2, found: KindInteger, msg: "unexpected token Token(INTEGER, 2)"},
		{input: "(1 + 2))", pos: 7, found: KindRParen, msg: "unexpected token Token(')', ')')"},
		{input: "()", pos: 1, found: KindRParen, msg: "unexpected token Token(')', ')')"},
		{input: "-1", pos: 0, found: KindMinus, msg: "unexpected token Token(MINUS, '-')"},
	}
	for _, test := range tests {
		_, err := Evaluate(test.input)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("want ParseError for %q but got %v", test.input, err)
			continue
		}
		if pe.Pos != test.pos || pe.Found != test.found || pe.Msg != test.msg {
			t.Errorf("%q: want %q (%v at %d) but got %q (%v at %d)",
				test.input, test.msg, test.found, test.pos, pe.Msg, pe.Found, pe.Pos)
		}
	}
}

func TestEvaluateLexError(t *testing.T) {
	for _, input := range []string{"2 + @", "@", "(1 + 2) # 3"} {
		_, err := Evaluate(input)
		var le *LexError
		if !errors.As(err, &le) {
			t.Errorf("want LexError for %q but got %v", input, err)
		}
	}
}

func TestInterpreterSteps(t *testing.T) {
	in, err := NewInterpreter(NewLexer(strings.NewReader("2 * 3 + 4")))
	if err != nil {
		t.Fatal(err)
	}
	if in.Current().Kind != KindInteger {
		t.Fatalf("want INTEGER lookahead but got %v", in.Current())
	}
	got, err := in.Term()
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(big.NewRat(6, 1)) != 0 {
		t.Errorf("want 6 but got %v", got)
	}
	if in.Current().Kind != KindPlus {
		t.Errorf("want PLUS lookahead but got %v", in.Current())
	}
	if err := in.eat(KindMinus); err == nil {
		t.Error("want error eating MINUS at PLUS")
	}
}
