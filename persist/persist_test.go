/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package persist

import (
	"bytes"
	"testing"

	"github.com/krotik/pangraph/pangraph"
)

func buildSample(t *testing.T) *pangraph.Graph {
	t.Helper()
	g := pangraph.NewGraph()
	n1, _ := g.CreateHandle("GAT", nil)
	n2, _ := g.CreateHandle("TAC", nil)
	n3, _ := g.CreateHandle("A", nil)
	if err := g.CreateEdge(n1, n2); err != nil {
		t.Fatal(err)
	}
	if err := g.CreateEdge(n2, n3); err != nil {
		t.Fatal(err)
	}
	path, _ := g.CreatePathHandle("ref")
	for _, h := range []pangraph.Handle{n1, n2, n3} {
		if _, err := g.AppendStep(path, h); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := buildSample(t)

	var buf bytes.Buffer
	if err := Save(original, &buf); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.NodeCount() != original.NodeCount() {
		t.Errorf("NodeCount() = %v, want %v", loaded.NodeCount(), original.NodeCount())
	}

	original.ForEachHandle(func(h pangraph.Handle) bool {
		if !loaded.HasNode(h.ID()) {
			t.Errorf("loaded graph missing node %v", h.ID())
			return true
		}
		wantSeq, _ := original.GetSequence(h)
		gotSeq, err := loaded.GetSequence(h)
		if err != nil || gotSeq != wantSeq {
			t.Errorf("node %v sequence = %q, want %q", h.ID(), gotSeq, wantSeq)
		}
		return true
	}, false)

	if !loaded.HasPath("ref") {
		t.Fatal("loaded graph missing path 'ref'")
	}
	ph, _ := loaded.GetPathHandle("ref")
	if n, _ := loaded.GetPathStepCount(ph); n != 3 {
		t.Errorf("GetPathStepCount(ref) = %v, want 3", n)
	}

	originalEdges := 0
	original.ForEachEdge(func(pangraph.Edge) bool { originalEdges++; return true })
	loadedEdges := 0
	loaded.ForEachEdge(func(pangraph.Edge) bool { loadedEdges++; return true })
	if loadedEdges != originalEdges {
		t.Errorf("edge count = %v, want %v", loadedEdges, originalEdges)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	g := buildSample(t)
	data, err := Bytes(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty snapshot bytes")
	}
}
