/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pangraph

import (
	"sync"
	"testing"

	"github.com/krotik/pangraph/dna"
)

func mustHandle(t *testing.T, g *Graph, seq string) Handle {
	t.Helper()
	h, err := g.CreateHandle(seq, nil)
	if err != nil {
		t.Fatalf("CreateHandle(%q): %v", seq, err)
	}
	return h
}

// S1 — Linear path.
func TestLinearPath(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "GAT")
	n2 := mustHandle(t, g, "TAC")
	n3 := mustHandle(t, g, "A")

	if err := g.CreateEdge(n1, n2); err != nil {
		t.Fatal(err)
	}
	if err := g.CreateEdge(n2, n3); err != nil {
		t.Fatal(err)
	}

	path, err := g.CreatePathHandle("ref")
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range []Handle{n1, n2, n3} {
		if _, err := g.AppendStep(path, h); err != nil {
			t.Fatal(err)
		}
	}

	if g.PathCount() != 1 {
		t.Errorf("PathCount() = %v, want 1", g.PathCount())
	}
	if n, _ := g.GetPathStepCount(path); n != 3 {
		t.Errorf("GetPathStepCount = %v, want 3", n)
	}

	var built string
	g.ForEachStepInPath(path, func(s StepHandle, h Handle) bool {
		seq, err := g.GetSequence(h)
		if err != nil {
			t.Fatal(err)
		}
		built += seq
		return true
	})
	if built != "GATTACA" {
		t.Errorf("reconstructed sequence = %q, want GATTACA", built)
	}
}

// S2 — Reversing edge.
func TestReversingEdge(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "AC")
	n2 := mustHandle(t, g, "GT")

	// right of 1 to right of 2, entering 2 reversed: create_edge(n1, flip(n2))
	if err := g.CreateEdge(n1, n2.Flip()); err != nil {
		t.Fatal(err)
	}

	neighbors := g.GetNeighbors(n1, false)
	if len(neighbors) != 1 || neighbors[0] != n2.Flip() {
		t.Fatalf("FollowEdges(n1,false) = %v, want [flip(n2)]", neighbors)
	}

	seq1, _ := g.GetSequence(n1)
	seq2, _ := g.GetSequence(neighbors[0])
	if seq1+seq2 != "ACAC" {
		t.Errorf("traversed sequence = %q, want ACAC", seq1+seq2)
	}
}

// S3 — Node division.
func TestDivideHandle(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "GATTACA")

	path, _ := g.CreatePathHandle("p")
	if _, err := g.AppendStep(path, n1); err != nil {
		t.Fatal(err)
	}

	pieces, err := g.DivideHandle(n1, []int{3, 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(pieces) != 3 {
		t.Fatalf("len(pieces) = %v, want 3", len(pieces))
	}

	want := []string{"GAT", "TA", "CA"}
	for i, id := range pieces {
		seq, err := g.GetSequence(NewHandle(id, false))
		if err != nil {
			t.Fatal(err)
		}
		if seq != want[i] {
			t.Errorf("piece %d sequence = %q, want %q", i, seq, want[i])
		}
	}

	if n, _ := g.GetPathStepCount(path); n != 3 {
		t.Fatalf("GetPathStepCount(p) after divide = %v, want 3", n)
	}
	for rank := 0; rank < 3; rank++ {
		h, err := g.GetHandleOfStep(StepHandle{Path: path, Rank: int64(rank)})
		if err != nil {
			t.Fatal(err)
		}
		if h.IsReverse() {
			t.Errorf("step %d unexpectedly reverse", rank)
		}
		if h.ID() != pieces[rank] {
			t.Errorf("step %d node id = %v, want %v", rank, h.ID(), pieces[rank])
		}
	}

	if g.HasNode(n1.ID()) {
		t.Errorf("original node %v still live after divide", n1.ID())
	}
}

// S4 — Destroy the middle node of a three-node linear graph.
func TestDestroyHandle(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "AAA")
	n2 := mustHandle(t, g, "CCC")
	n3 := mustHandle(t, g, "GGG")
	g.CreateEdge(n1, n2)
	g.CreateEdge(n2, n3)

	before := g.NodeCount()
	if err := g.DestroyHandle(n2); err != nil {
		t.Fatal(err)
	}

	if g.HasNode(n2.ID()) {
		t.Error("has_node(2) should be false after destroy")
	}
	if g.NodeCount() != before-1 {
		t.Errorf("NodeCount() = %v, want %v", g.NodeCount(), before-1)
	}
	if g.HasEdge(n1, n2) || g.HasEdge(n2, n3) {
		t.Error("edges incident to destroyed node should be gone")
	}
	if g.HasEdge(n1, n3) {
		t.Error("no edge should have been created between 1 and 3")
	}
}

// S5 — Canonical edge enumeration with a reversing self-loop.
func TestForEachEdgeSelfLoop(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "AC")
	n2 := mustHandle(t, g, "GT")

	if err := g.CreateEdge(n1, n1.Flip()); err != nil {
		t.Fatal(err)
	}
	if err := g.CreateEdge(n1, n2); err != nil {
		t.Fatal(err)
	}

	count1 := collectEdges(g)
	count2 := collectEdges(g)

	if len(count1) != 2 {
		t.Fatalf("for_each_edge yielded %d edges, want 2", len(count1))
	}
	if !edgeSetsEqual(count1, count2) {
		t.Errorf("two runs of for_each_edge disagreed: %v vs %v", count1, count2)
	}
}

func collectEdges(g *Graph) []Edge {
	var out []Edge
	g.ForEachEdge(func(e Edge) bool {
		out = append(out, e)
		return true
	})
	return out
}

func edgeSetsEqual(a, b []Edge) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[Edge]bool)
	for _, e := range a {
		seen[e] = true
	}
	for _, e := range b {
		if !seen[e] {
			return false
		}
	}
	return true
}

// S6 — Parallel iteration.
func TestForEachHandleParallel(t *testing.T) {
	g := NewGraph()
	want := make(map[uint64]bool)
	for _, seq := range []string{"A", "C", "G", "T", "AC", "GT"} {
		h := mustHandle(t, g, seq)
		want[h.ID()] = true
	}

	got := make(map[uint64]bool)
	var mu sync.Mutex
	g.ForEachHandle(func(h Handle) bool {
		mu.Lock()
		got[h.ID()] = true
		mu.Unlock()
		return true
	}, true)

	if len(got) != len(want) {
		t.Fatalf("parallel ForEachHandle visited %d ids, want %d", len(got), len(want))
	}
	for id := range want {
		if !got[id] {
			t.Errorf("missing id %v from parallel traversal", id)
		}
	}
}

// Quantified invariant: flip is an involution and preserves id/orientation.
func TestFlipInvariants(t *testing.T) {
	g := NewGraph()
	h := mustHandle(t, g, "ACGT")

	if g.GetID(h.Flip()) != g.GetID(h) {
		t.Error("get_id(flip(h)) != get_id(h)")
	}
	if g.GetIsReverse(h.Flip()) == g.GetIsReverse(h) {
		t.Error("get_is_reverse(flip(h)) should differ from get_is_reverse(h)")
	}
	if h.Flip().Flip() != h {
		t.Error("flip(flip(h)) != h")
	}
}

func TestGetSequenceReverseComplement(t *testing.T) {
	g := NewGraph()
	h := mustHandle(t, g, "GATTACA")

	fwd, _ := g.GetSequence(h)
	rev, _ := g.GetSequence(h.Flip())
	if rev != dna.ReverseComplement(fwd) {
		t.Errorf("get_sequence(flip(h)) = %q, want %q", rev, dna.ReverseComplement(fwd))
	}
}

func TestApplyOrientationRoundTrip(t *testing.T) {
	g := NewGraph()
	h := mustHandle(t, g, "GATTACA")
	original, _ := g.GetSequence(h)

	fresh, err := g.ApplyOrientation(h)
	if err != nil {
		t.Fatal(err)
	}
	again, err := g.ApplyOrientation(fresh.Flip())
	if err != nil {
		t.Fatal(err)
	}

	restored, _ := g.GetSequence(again)
	if restored != original {
		t.Errorf("orientation round trip = %q, want %q", restored, original)
	}
}

func TestNodeSizeMatchesForEachHandle(t *testing.T) {
	g := NewGraph()
	for _, seq := range []string{"A", "C", "G"} {
		mustHandle(t, g, seq)
	}
	n := 0
	g.ForEachHandle(func(Handle) bool { n++; return true }, false)
	if n != g.NodeCount() {
		t.Errorf("for_each_handle visited %d, node_count() = %v", n, g.NodeCount())
	}
}

func TestDestroyEdgeDuringFollowEdgesForbidden(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "AA")
	n2 := mustHandle(t, g, "CC")
	g.CreateEdge(n1, n2)

	var gotErr error
	g.FollowEdges(n1, false, func(n Handle) bool {
		gotErr = g.DestroyEdge(n1, n2)
		return true
	})
	if gotErr == nil {
		t.Error("expected DestroyEdge to fail while follow_edges iterates the same node")
	}
}

func TestCreateHandleExplicitIDExtendsRangeDown(t *testing.T) {
	g := NewGraph()
	hi := uint64(10)
	if _, err := g.CreateHandle("AAA", &hi); err != nil {
		t.Fatal(err)
	}
	lo := uint64(2)
	if _, err := g.CreateHandle("CCC", &lo); err != nil {
		t.Fatal(err)
	}
	if g.MinNodeID() != 2 {
		t.Errorf("MinNodeID() = %v, want 2 (explicit id below previous minimum should extend the range)", g.MinNodeID())
	}
}

func TestSwapHandlesPreservesSequencesAndFlipsIterationOrder(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "AAAA")
	n2 := mustHandle(t, g, "CC")

	seq1Before, _ := g.GetSequence(n1)
	seq2Before, _ := g.GetSequence(n2)

	var before []uint64
	g.ForEachHandle(func(h Handle) bool { before = append(before, h.ID()); return true }, false)

	if err := g.SwapHandles(n1, n2); err != nil {
		t.Fatal(err)
	}

	seq1After, err := g.GetSequence(n1)
	if err != nil || seq1After != seq1Before {
		t.Errorf("GetSequence(n1) after swap = %q, %v, want %q, nil", seq1After, err, seq1Before)
	}
	seq2After, err := g.GetSequence(n2)
	if err != nil || seq2After != seq2Before {
		t.Errorf("GetSequence(n2) after swap = %q, %v, want %q, nil", seq2After, err, seq2Before)
	}
	if n, _ := g.GetLength(n1); n != 4 {
		t.Errorf("GetLength(n1) after swap = %v, want 4", n)
	}

	var after []uint64
	g.ForEachHandle(func(h Handle) bool { after = append(after, h.ID()); return true }, false)

	if len(before) != 2 || len(after) != 2 || before[0] != after[1] || before[1] != after[0] {
		t.Errorf("for_each_handle order = %v, want the reverse of %v", after, before)
	}
}

func TestSwapHandlesDifferentLengthsAllowed(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "A")
	n2 := mustHandle(t, g, "GGGGG")

	if err := g.SwapHandles(n1, n2); err != nil {
		t.Fatalf("SwapHandles with different-length nodes should be allowed: %v", err)
	}
	if seq, _ := g.GetSequence(n1); seq != "A" {
		t.Errorf("GetSequence(n1) = %q, want %q", seq, "A")
	}
	if seq, _ := g.GetSequence(n2); seq != "GGGGG" {
		t.Errorf("GetSequence(n2) = %q, want %q", seq, "GGGGG")
	}
}

func TestSwapHandlesUnknownNode(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "A")
	if err := g.SwapHandles(n1, NewHandle(999, false)); err == nil {
		t.Error("expected an error swapping with a nonexistent node")
	}
}

func TestDivideHandleRejectsOutOfRangeOffsets(t *testing.T) {
	g := NewGraph()
	n := mustHandle(t, g, "ACGTAC")

	cases := [][]int{
		{0, 3},
		{3, 6},
		{3, 7},
		{-1, 3},
	}
	for _, offsets := range cases {
		if _, err := g.DivideHandle(n, offsets); err == nil {
			t.Errorf("DivideHandle(%v) should fail for out-of-range offsets", offsets)
		}
	}

	if n2 := g.NodeCount(); n2 != 1 {
		t.Errorf("NodeCount() = %v after rejected divides, want 1 (node must survive unharmed)", n2)
	}
}

func TestGetStepCountOnNodeHandle(t *testing.T) {
	g := NewGraph()
	n1 := mustHandle(t, g, "AA")
	n2 := mustHandle(t, g, "CC")

	pathA, err := g.CreatePathHandle("a")
	if err != nil {
		t.Fatal(err)
	}
	pathB, err := g.CreatePathHandle("b")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := g.AppendStep(pathA, n1); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AppendStep(pathA, n2); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AppendStep(pathB, n1); err != nil {
		t.Fatal(err)
	}

	n, err := g.GetStepCount(n1)
	if err != nil || n != 2 {
		t.Errorf("GetStepCount(n1) = %v, %v, want 2, nil", n, err)
	}
	n, err = g.GetStepCount(n2)
	if err != nil || n != 1 {
		t.Errorf("GetStepCount(n2) = %v, %v, want 1, nil", n, err)
	}

	// Orientation of the query handle must not matter: both occurrences
	// are counted regardless of which strand n1 is queried on.
	if n, err := g.GetStepCount(n1.Flip()); err != nil || n != 2 {
		t.Errorf("GetStepCount(flip(n1)) = %v, %v, want 2, nil", n, err)
	}
}

func TestCreatePathHandleRejectsReservedDelimiter(t *testing.T) {
	g := NewGraph()

	if _, err := g.CreatePathHandle("a$b"); err == nil {
		t.Error("CreatePathHandle(\"a$b\") should fail: '$' is reserved by the name index")
	}
	if _, err := g.CreatePathHandle(""); err == nil {
		t.Error("CreatePathHandle(\"\") should fail: empty path names are not allowed")
	}
	if _, err := g.CreatePathHandle("a-valid-name"); err != nil {
		t.Errorf("CreatePathHandle(valid name) failed unexpectedly: %v", err)
	}
}
