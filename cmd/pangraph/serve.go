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
	"net/http"

	"github.com/krotik/pangraph/live"
	"github.com/krotik/pangraph/persist"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "localhost:9090", "address to listen on")
	replay := fs.Int("replay", 100, "number of past events replayed to new subscribers")
	fs.Usage = func() {
		fmt.Println()
		fmt.Println("Usage of pangraph serve [options] <snapshot-file>")
		fmt.Println()
		fs.PrintDefaults()
		fmt.Println()
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("serve: expected exactly one snapshot file")
	}

	g, err := persist.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	hub := live.NewHub(*replay)
	g.SetRule(hub)

	http.Handle("/events", hub)
	fmt.Printf("serving %d nodes on ws://%s/events\n", g.NodeCount(), *addr)

	return http.ListenAndServe(*addr, nil)
}
