/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/krotik/common/termutil"

	"github.com/krotik/pangraph/pangraph"
	"github.com/krotik/pangraph/persist"
)

func isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "bye" || s == "\x04"
}

/*
runConsole starts an interactive REPL over a loaded snapshot, grounded on
the teacher's own commandline console setup: a ConsoleLineTerminal with a
history mixin, reading lines until an exit line or EOF.
*/
func runConsole(args []string) error {
	fs := flag.NewFlagSet("console", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println()
		fmt.Println("Usage of pangraph console <snapshot-file>")
		fmt.Println()
		fs.PrintDefaults()
		fmt.Println()
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("console: expected exactly one snapshot file")
	}

	g, err := persist.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	clt, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	histfile := filepath.Join(filepath.Dir(os.Args[0]), ".pangraph_console_history")
	clt, err = termutil.AddHistoryMixin(clt, histfile, isExitLine)
	if err != nil {
		return err
	}

	if err := clt.StartTerm(); err != nil {
		return err
	}
	defer clt.StopTerm()

	fmt.Println("pangraph console -", g.NodeCount(), "nodes loaded")
	fmt.Println("Commands: handle, sequence, edges, path, steps, help, quit")

	line, err := clt.NextLine()
	for err == nil && !isExitLine(strings.TrimSpace(line)) {
		if cerr := runConsoleCommand(g, clt, strings.TrimSpace(line)); cerr != nil {
			fmt.Fprintln(clt, cerr.Error())
		}
		line, err = clt.NextLine()
	}

	return nil
}

func runConsoleCommand(g *pangraph.Graph, out termutil.ConsoleLineTerminal, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "help":
		fmt.Fprintln(out, "handle <id> [+|-]         show orientation and length")
		fmt.Fprintln(out, "sequence <id> [+|-]       show the node's sequence")
		fmt.Fprintln(out, "edges <id> [+|-]          list neighbors on both ends")
		fmt.Fprintln(out, "path <name>               show step count for a path")
		fmt.Fprintln(out, "steps <name>              list every step of a path")
		return nil

	case "handle":
		if len(fields) < 2 {
			return fmt.Errorf("expected: handle <id> [+|-]")
		}
		h, err := parseConsoleHandle(fields[1:])
		if err != nil {
			return err
		}
		n, err := g.GetLength(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "id=%d reverse=%v length=%d\n", h.ID(), h.IsReverse(), n)
		return nil

	case "sequence":
		if len(fields) < 2 {
			return fmt.Errorf("expected: sequence <id> [+|-]")
		}
		h, err := parseConsoleHandle(fields[1:])
		if err != nil {
			return err
		}
		seq, err := g.GetSequence(h)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, seq)
		return nil

	case "edges":
		if len(fields) < 2 {
			return fmt.Errorf("expected: edges <id> [+|-]")
		}
		h, err := parseConsoleHandle(fields[1:])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "left:", g.GetNeighbors(h, true))
		fmt.Fprintln(out, "right:", g.GetNeighbors(h, false))
		return nil

	case "path":
		if len(fields) != 2 {
			return fmt.Errorf("expected: path <name>")
		}
		ph, err := g.GetPathHandle(fields[1])
		if err != nil {
			return err
		}
		n, err := g.GetPathStepCount(ph)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "path %q: %d steps\n", fields[1], n)
		return nil

	case "steps":
		if len(fields) != 2 {
			return fmt.Errorf("expected: steps <name>")
		}
		ph, err := g.GetPathHandle(fields[1])
		if err != nil {
			return err
		}
		return g.ForEachStepInPath(ph, func(s pangraph.StepHandle, h pangraph.Handle) bool {
			fmt.Fprintf(out, "  %d: %v\n", s.Rank, h)
			return true
		})

	default:
		return fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
}

func parseConsoleHandle(fields []string) (pangraph.Handle, error) {
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, err
	}
	reverse := false
	if len(fields) > 1 {
		reverse, err = parseSide(fields[1])
		if err != nil {
			return 0, err
		}
	}
	return pangraph.NewHandle(id, reverse), nil
}
