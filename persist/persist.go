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
Package persist saves and loads a graph as a single gob-encoded snapshot
blob, grounded on the teacher's own gob usage for its string-map encoding
helpers. The spec treats persistence as an opaque blob with only its entry
points specified; gob is the natural choice since the teacher already
reaches for it whenever it needs to serialize its own in-memory structures.
*/
package persist

import (
	"bytes"
	"encoding/gob"
	"io"
	"os"

	"github.com/krotik/pangraph/pangraph"
)

/*
snapshot is the gob-serializable shape of a graph: flat enough that it
does not need to know about bitvec's internal run-length or rank-cache
representations, which are rebuilt on load.
*/
type snapshot struct {
	Version int

	NodeIDs  []uint64
	NodeSeqs []string

	Edges []edgeRecord

	Paths []pathRecord
}

type edgeRecord struct {
	LeftID, RightID   uint64
	LeftRev, RightRev bool
}

type pathRecord struct {
	Name     string
	NodeIDs  []uint64
	Reversed []bool
}

func init() {
	gob.Register(snapshot{})
}

/*
Save writes a gob-encoded snapshot of g to w: every live node and its
forward sequence, every canonical edge once, and every path with its
steps. Tombstoned bases and divided-away node ids are not preserved —
loading a snapshot always yields an already-compacted graph.
*/
func Save(g *pangraph.Graph, w io.Writer) error {
	snap := snapshot{Version: pangraph.VERSION}

	g.ForEachHandle(func(h pangraph.Handle) bool {
		seq, err := g.GetSequence(h)
		if err != nil {
			return true
		}
		snap.NodeIDs = append(snap.NodeIDs, h.ID())
		snap.NodeSeqs = append(snap.NodeSeqs, seq)
		return true
	}, false)

	g.ForEachEdge(func(e pangraph.Edge) bool {
		snap.Edges = append(snap.Edges, edgeRecord{
			LeftID: e.Left.ID(), LeftRev: e.Left.IsReverse(),
			RightID: e.Right.ID(), RightRev: e.Right.IsReverse(),
		})
		return true
	})

	g.ForEachPathHandle(func(ph pangraph.PathHandle) bool {
		name, err := g.GetPathName(ph)
		if err != nil {
			return true
		}
		rec := pathRecord{Name: name}
		g.ForEachStepInPath(ph, func(s pangraph.StepHandle, h pangraph.Handle) bool {
			rec.NodeIDs = append(rec.NodeIDs, h.ID())
			rec.Reversed = append(rec.Reversed, h.IsReverse())
			return true
		})
		snap.Paths = append(snap.Paths, rec)
		return true
	})

	return gob.NewEncoder(w).Encode(&snap)
}

/*
Load decodes a snapshot from r into a freshly constructed Graph. Node ids
are recreated explicitly so every saved node keeps its id. Ids of nodes
destroyed before the save are not recorded, so the loaded graph's
MinNodeID and MaxNodeID span only the saved nodes.
*/
func Load(r io.Reader) (*pangraph.Graph, error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}

	g := pangraph.NewGraph()

	for i, id := range snap.NodeIDs {
		explicit := id
		if _, err := g.CreateHandle(snap.NodeSeqs[i], &explicit); err != nil {
			return nil, err
		}
	}

	for _, e := range snap.Edges {
		left := pangraph.NewHandle(e.LeftID, e.LeftRev)
		right := pangraph.NewHandle(e.RightID, e.RightRev)
		if err := g.CreateEdge(left, right); err != nil {
			return nil, err
		}
	}

	for _, p := range snap.Paths {
		ph, err := g.CreatePathHandle(p.Name)
		if err != nil {
			return nil, err
		}
		for i, id := range p.NodeIDs {
			h := pangraph.NewHandle(id, p.Reversed[i])
			if _, err := g.AppendStep(ph, h); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

/*
SaveFile and LoadFile are convenience wrappers over Save/Load for a path on
disk, matching the load(path) -> graph / free(graph) pair named in the
spec's external-interfaces section.
*/
func SaveFile(g *pangraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Save(g, f)
}

func LoadFile(path string) (*pangraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

/*
Bytes encodes g to an in-memory snapshot, useful for tests and for
round-tripping over a transport that already frames messages.
*/
func Bytes(g *pangraph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
