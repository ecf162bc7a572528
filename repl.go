package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/quark-lang/quark/backend"
	"github.com/quark-lang/quark/frontend"
	"github.com/quark-lang/quark/source"
)

const (
	replPrompt  = "quark> "
	historyFile = ".quark_history"
	replSource  = "<repl>"
)

const replBanner = `Quark REPL
Enter an expression or a declaration. Ctrl+C cancels input, Ctrl+D exits.`

// runRepl reads lines from the terminal and prints their translation until the
// input is closed or `:quit` is entered
func runRepl(opts options) error {
	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)

	history := historyPath()
	loadHistory(ln, history, opts.logger)

	fmt.Println(replBanner)

	for {
		line, err := ln.Prompt(replPrompt)

		if err == liner.ErrPromptAborted {
			continue
		}

		if err == io.EOF {
			fmt.Println()
			break
		}

		if err != nil {
			return errors.Wrap(err, "could not read input")
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == ":quit" {
			break
		}

		ln.AppendHistory(line)
		translate(os.Stdout, line, !opts.noColor)
	}

	saveHistory(ln, history, opts.logger)
	return nil
}

// historyStore is the part of the line editor that persists entered lines
type historyStore interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// loadHistory restores earlier sessions. A missing file is a fresh start
func loadHistory(store historyStore, filename string, logger *log.Logger) {
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return
	}

	if err != nil {
		logger.Printf("could not open history: %s", err)
		return
	}
	defer f.Close()

	n, err := store.ReadHistory(f)
	if err != nil {
		logger.Printf("%s", errors.Wrapf(err, "could not read history from '%s'", filename))
		return
	}

	logger.Printf("loaded %d history line(s) from %s", n, filename)
}

// saveHistory writes the session's lines back for the next session
func saveHistory(store historyStore, filename string, logger *log.Logger) {
	f, err := os.Create(filename)
	if err != nil {
		logger.Printf("could not create history: %s", err)
		return
	}
	defer f.Close()

	n, err := store.WriteHistory(f)
	if err != nil {
		logger.Printf("%s", errors.Wrapf(err, "could not write history to '%s'", filename))
		return
	}

	logger.Printf("saved %d history line(s) to %s", n, filename)
}

func historyPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, historyFile)
	}

	return historyFile
}

// translate compiles one line of REPL input and prints either the emitted code
// or the diagnostic. Lines whose first token is `fn` hold whole declarations,
// anything else is a single expression
func translate(w io.Writer, line string, withColor bool) {
	file := source.NewFile(replSource, line)

	toks, msg := frontend.Tokenize(file)
	if msg != nil {
		fmt.Fprintln(w, msg.Make(withColor))
		return
	}

	if toks[0].Symbol == frontend.FnSymbol {
		prog, msg := frontend.NewParser(file, toks).Parse()
		if msg != nil {
			fmt.Fprintln(w, msg.Make(withColor))
			return
		}

		out, err := backend.Synthesise(prog)
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}

		fmt.Fprint(w, out)
		return
	}

	expr, msg := frontend.ParseExpression(file)
	if msg != nil {
		fmt.Fprintln(w, msg.Make(withColor))
		return
	}

	out, err := backend.SynthesiseExpr(expr)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	fmt.Fprintln(w, out)
}
