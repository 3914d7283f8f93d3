// Command sylvia parses untyped lambda calculus terms, verifies that
// they are closed and prints them, either from a file or interactively.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/lfairy/sylvia/parser"
	"github.com/lfairy/sylvia/term"
)

var (
	debruijn = flag.Bool("debruijn", false, "print terms with bare de Bruijn indices")
	named    = flag.Bool("named", false, "print terms with synthesized binder names")
)

const historyFile = ".sylvia_history"

func usage() {
	fmt.Fprint(os.Stderr, "usage: sylvia ( -debruijn | -named ) [file]\n\n")
	fmt.Fprint(os.Stderr, "sylvia parses untyped lambda calculus terms, verifies that they are\n")
	fmt.Fprint(os.Stderr, "closed and prints them. Without a file it reads terms interactively.\n")
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func render(t term.Closed) string {
	if *named {
		return t.ContextString(nil)
	}
	return t.DeBruijnString()
}

func runFile(path string) {
	b, err := os.ReadFile(path)
	if err != nil {
		errExit(err)
	}
	t, err := parser.ParseClosed(string(b))
	if err != nil {
		errExit(err)
	}
	fmt.Println(render(t))
}

func repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if err == liner.ErrPromptAborted {
			fmt.Println()
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := parser.ParseClosed(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(render(t))
		ln.AppendHistory(line)
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if *debruijn == *named {
		usage()
	}
	switch args := flag.Args(); len(args) {
	case 0:
		repl()
	case 1:
		runFile(args[0])
	default:
		usage()
	}
}
