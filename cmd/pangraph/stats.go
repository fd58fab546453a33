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

	"github.com/krotik/common/bitutil"

	"github.com/krotik/pangraph/persist"
)

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dump := fs.Bool("dump", false, "also hex-dump the first node's sequence")
	fs.Usage = func() {
		fmt.Println()
		fmt.Println("Usage of pangraph stats [options] <snapshot-file>")
		fmt.Println()
		fs.PrintDefaults()
		fmt.Println()
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("stats: expected exactly one snapshot file")
	}

	g, err := persist.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	s := g.Stats()
	fmt.Printf("nodes:      %d\n", s.NodeCount)
	fmt.Printf("edges:      %d\n", s.EdgeCount)
	fmt.Printf("paths:      %d\n", s.PathCount)
	fmt.Printf("bases:      %d\n", s.TotalBaseSize)
	fmt.Printf("id range:   [%d, %d]\n", s.MinNodeID, s.MaxNodeID)

	if *dump && s.NodeCount > 0 {
		h, err := g.GetHandle(s.MinNodeID, false)
		if err == nil {
			if seq, err := g.GetSequence(h); err == nil {
				fmt.Println()
				fmt.Printf("node %d:\n%s\n", s.MinNodeID, bitutil.HexDump([]byte(seq)))
			}
		}
	}

	return nil
}
