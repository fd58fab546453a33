/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Command pangraph is the standalone driver for the succinct dynamic
bidirected sequence graph engine.

Available commands:

    build     Build a graph from a line-oriented text file and save it
    stats     Load a snapshot and print summary statistics
    serve     Load a snapshot and serve it over the live event feed
    console   Interactive REPL for ad hoc inspection of a snapshot
*/
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	flag.Usage = func() {
		fmt.Printf("Usage of %s <command>\n\n", os.Args[0])
		fmt.Println("pangraph: succinct dynamic bidirected sequence graph engine")
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    build     Build a graph from a line-oriented text file and save it")
		fmt.Println("    stats     Load a snapshot and print summary statistics")
		fmt.Println("    serve     Load a snapshot and serve it over the live event feed")
		fmt.Println("    console   Interactive REPL for ad hoc inspection of a snapshot")
		fmt.Println()
		fmt.Printf("Use %s <command> -help for more information about a given command.\n\n", os.Args[0])
	}

	err := flag.CommandLine.Parse(os.Args[1:])

	if len(flag.Args()) == 0 {
		if err == nil {
			flag.Usage()
		}
		return
	}

	var cmdErr error
	switch flag.Args()[0] {
	case "build":
		cmdErr = runBuild(os.Args[2:])
	case "stats":
		cmdErr = runStats(os.Args[2:])
	case "serve":
		cmdErr = runServe(os.Args[2:])
	case "console":
		cmdErr = runConsole(os.Args[2:])
	default:
		flag.Usage()
		return
	}

	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, cmdErr.Error())
		os.Exit(1)
	}
}
