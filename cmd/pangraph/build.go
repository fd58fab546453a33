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
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/krotik/pangraph/pangraph"
	"github.com/krotik/pangraph/persist"
)

/*
runBuild reads a line-oriented description of a graph and saves it as a
snapshot. Each line is one of:

    node <id> <seq>
    edge <lid> <lside> <rid> <rside>
    path <name>
    step <path> <id> <side>

<side> is "+" for forward or "-" for reverse, GFA-link style. Blank lines
and lines starting with "#" are ignored.
*/
func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	out := fs.String("o", "graph.snapshot", "output snapshot file")
	fs.Usage = func() {
		fmt.Println()
		fmt.Println("Usage of pangraph build [options] <input-file>")
		fmt.Println()
		fs.PrintDefaults()
		fmt.Println()
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("build: expected exactly one input file")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	g := pangraph.NewGraph()
	paths := make(map[string]pangraph.PathHandle)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := buildLine(g, paths, line); err != nil {
			return fmt.Errorf("build: line %d: %v", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("built graph: %d nodes, %d edges, %d paths\n",
		g.NodeCount(), g.Stats().EdgeCount, g.PathCount())

	return persist.SaveFile(g, *out)
}

func buildLine(g *pangraph.Graph, paths map[string]pangraph.PathHandle, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "node":
		if len(fields) != 3 {
			return fmt.Errorf("expected: node <id> <seq>")
		}
		id, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return err
		}
		_, err = g.CreateHandle(fields[2], &id)
		return err

	case "edge":
		if len(fields) != 5 {
			return fmt.Errorf("expected: edge <lid> <lside> <rid> <rside>")
		}
		left, err := parseHandleFields(fields[1], fields[2])
		if err != nil {
			return err
		}
		right, err := parseHandleFields(fields[3], fields[4])
		if err != nil {
			return err
		}
		return g.CreateEdge(left, right)

	case "path":
		if len(fields) != 2 {
			return fmt.Errorf("expected: path <name>")
		}
		ph, err := g.CreatePathHandle(fields[1])
		if err != nil {
			return err
		}
		paths[fields[1]] = ph
		return nil

	case "step":
		if len(fields) != 4 {
			return fmt.Errorf("expected: step <path> <id> <side>")
		}
		ph, ok := paths[fields[1]]
		if !ok {
			return fmt.Errorf("unknown path %q, declare it with a 'path' line first", fields[1])
		}
		handle, err := parseHandleFields(fields[2], fields[3])
		if err != nil {
			return err
		}
		_, err = g.AppendStep(ph, handle)
		return err

	default:
		return fmt.Errorf("unknown directive %q", fields[0])
	}
}

func parseHandleFields(idField, sideField string) (pangraph.Handle, error) {
	id, err := strconv.ParseUint(idField, 10, 64)
	if err != nil {
		return 0, err
	}
	reverse, err := parseSide(sideField)
	if err != nil {
		return 0, err
	}
	return pangraph.NewHandle(id, reverse), nil
}

func parseSide(side string) (bool, error) {
	switch side {
	case "+":
		return false, nil
	case "-":
		return true, nil
	default:
		return false, fmt.Errorf("side must be '+' or '-', got %q", side)
	}
}
