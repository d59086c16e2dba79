package gocalc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode"
)

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

// Lexer splits its input into tokens on demand. Pos counts runes, not bytes.
type Lexer struct {
	buf *bufio.Reader
	pos int
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, error) {
	r, _, err := l.buf.ReadRune()
	if err == nil {
		l.pos++
	}
	return r, err
}

func (l *Lexer) unreadRune() error {
	err := l.buf.UnreadRune()
	if err == nil {
		l.pos--
	}
	return err
}

func (l *Lexer) SkipWhite() {
	for {
		r, err := l.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			l.unreadRune()
			return
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (l *Lexer) ParseInteger() (Token, error) {
	start := l.pos
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, err
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	v, ok := new(big.Int).SetString(buf.String(), 10)
	if !ok {
		return Token{}, fmt.Errorf("invalid integer %q at position %d", buf.String(), start)
	}
	return Token{
		Kind:  KindInteger,
		Value: v,
		Pos:   start,
	}, nil
}

// NextToken returns the next token in the input. Once the input is
// exhausted every call returns a KindEOF token.
func (l *Lexer) NextToken() (Token, error) {
	l.SkipWhite()
	start := l.pos
	r, err := l.readRune()
	if err != nil {
		if err == io.EOF {
			return Token{Kind: KindEOF, Pos: start}, nil
		}
		return Token{}, err
	}

	if isDigit(r) {
		l.unreadRune()
		return l.ParseInteger()
	}

	var kind Kind
	switch r {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindMultiply
	case '/':
		kind = KindDivide
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	default:
		return Token{}, &LexError{Pos: start, Char: r}
	}
	return Token{Kind: kind, Pos: start}, nil
}

// Tokenize returns every token of s, ending with the KindEOF token.
func Tokenize(s string) ([]Token, error) {
	l := NewLexer(strings.NewReader(s))
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == KindEOF {
			return toks, nil
		}
	}
}
