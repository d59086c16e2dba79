package gocalc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// REPL reads one expression per line from In and writes each result to Out.
// Evaluation errors go to Err, or Out when Err is nil, and do not stop the
// loop.
type REPL struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Prompt string

	// Trace, if set, is called with the tokens of each line before it is
	// evaluated.
	Trace func([]Token)
}

// Run loops until In is exhausted. It returns nil on EOF and only reports
// I/O failures; bad expressions are printed and skipped. Lines have no
// length limit.
func (r *REPL) Run() error {
	buf := bufio.NewReader(r.In)
	for {
		fmt.Fprint(r.Out, r.Prompt)
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		eof := err == io.EOF
		if eof && line == "" {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			if err := r.eval(line); err != nil {
				if !isEvalError(err) {
					return err
				}
				fmt.Fprintf(r.errOut(), "error: %v\n", err)
			}
		}
		if eof {
			break
		}
	}
	if r.Prompt != "" {
		fmt.Fprintln(r.Out)
	}
	return nil
}

func (r *REPL) eval(line string) error {
	if r.Trace != nil {
		toks, err := Tokenize(line)
		if err != nil {
			return err
		}
		r.Trace(toks)
	}
	ret, err := Evaluate(line)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, FormatNumber(ret))
	return nil
}

func (r *REPL) errOut() io.Writer {
	if r.Err == nil {
		return r.Out
	}
	return r.Err
}

func isEvalError(err error) bool {
	var le *LexError
	var pe *ParseError
	var ae *ArithmeticError
	return errors.As(err, &le) || errors.As(err, &pe) || errors.As(err, &ae)
}
