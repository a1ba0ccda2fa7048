// Copyright © 2024 Galvanized Logic Inc.

// Command collider-demo loads a scenario file and replays its event
// trace, optionally single-stepping it interactively. It supplements the
// engine package's add/advance/next worked example
// (original_source/src/lib.rs's module doc comment) as a runnable
// artifact.
package main

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"golang.org/x/term"

	"github.com/gazed/collider2d/scenario"
)

const version = "0.1.0"

const usage = `collider-demo.

Usage:
    collider-demo <scenario> [--interactive]
    collider-demo -h | --help

Options:
    -h --help       Show this screen.
    --interactive   Single-step the trace, waiting for a keypress between
                    each occurrence.`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	path, _ := opts.String("<scenario>")
	interactive, _ := opts.Bool("--interactive")

	s, err := scenario.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	trace, err := scenario.Run(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, occ := range trace {
		fmt.Printf("%4d  t=%-10v %-8s %-16s %-16s\n", i, occ.Time, occ.Event, occ.A, occ.B)
		if interactive {
			waitForKeypress()
		}
	}
}

// waitForKeypress puts the terminal into raw mode just long enough to
// read a single byte, so the demo can pace itself one occurrence at a
// time without requiring Enter.
func waitForKeypress() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	var b [1]byte
	os.Stdin.Read(b[:])
}
