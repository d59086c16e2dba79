package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

const prompt = "calc> "

var (
	showTokens  = flag.Bool("tokens", false, "dump the tokens of each line to stderr")
	forcePrompt = flag.Bool("prompt", false, "show the prompt even when stdin is not a terminal")
)

// promptFor returns the prompt to print before each read on fd.
func promptFor(fd uintptr, force bool) string {
	if force || isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return prompt
	}
	return ""
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-tokens] [-prompt]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	repl := &gocalc.REPL{
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Prompt: promptFor(os.Stdin.Fd(), *forcePrompt),
	}
	if *showTokens {
		repl.Trace = func(toks []gocalc.Token) {
			spew.Fdump(os.Stderr, toks)
		}
	}

	if err := repl.Run(); err != nil {
		log.Fatal(err)
	}
}
