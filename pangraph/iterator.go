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

import "sync"

/*
FollowEdges walks the adjacency list leaving h through its left end
(goLeft) or its right end (!goLeft), invoking cb on each neighbor handle in
storage order. cb's return value is a continue-or-stop flag: the walk
stops at the first false and FollowEdges returns false, otherwise it
returns true once exhausted. While the walk is in progress, destroy_edge is
forbidden on h's node (see DestroyEdge).
*/
func (g *Graph) FollowEdges(h Handle, goLeft bool, cb func(n Handle) bool) bool {
	g.mu.Lock()
	neighbors := append([]Handle{}, g.edges.follow(h, goLeft)...)
	id := h.ID()
	prevIterating, prevID := g.edges.iterating, g.edges.iteratingNodeID
	g.edges.iterating, g.edges.iteratingNodeID = true, id
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.edges.iterating, g.edges.iteratingNodeID = prevIterating, prevID
		g.mu.Unlock()
	}()

	for _, n := range neighbors {
		if !cb(n) {
			return false
		}
	}
	return true
}

/*
GetNeighbors is a convenience wrapper over FollowEdges for callers that
want the full neighbor list rather than a callback.
*/
func (g *Graph) GetNeighbors(h Handle, goLeft bool) []Handle {
	var out []Handle
	g.FollowEdges(h, goLeft, func(n Handle) bool {
		out = append(out, n)
		return true
	})
	return out
}

// GetDegree returns the number of edges leaving h's left or right end.
func (g *Graph) GetDegree(h Handle, goLeft bool) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges.degree(h, goLeft)
}

/*
ForEachHandle visits every live node, forward oriented, until cb returns
false. When parallel is true, nodes are dispatched to worker goroutines and
visited in no particular order; cb must then be safe for concurrent use,
and a false return only stops new dispatch, not workers already running —
the same best-effort semantics the spec allows for a parallel traversal.
*/
func (g *Graph) ForEachHandle(cb func(h Handle) bool, parallel bool) {
	g.mu.RLock()
	ids := make([]uint64, 0, g.nodes.liveCount)
	g.nodes.forEachHandle(func(id uint64) bool {
		ids = append(ids, id)
		return true
	})
	g.mu.RUnlock()

	if !parallel {
		for _, id := range ids {
			if !cb(NewHandle(id, false)) {
				return
			}
		}
		return
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		stopped bool
	)
	for _, id := range ids {
		mu.Lock()
		if stopped {
			mu.Unlock()
			break
		}
		mu.Unlock()

		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			if !cb(NewHandle(id, false)) {
				mu.Lock()
				stopped = true
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()
}

/*
ForEachEdge visits every edge exactly once, in its canonical orientation.
Self-loops can register two entries in the same adjacency bucket, so a seen
set is used rather than the id-comparison trick of dodging duplicates,
which miscounts a reversing self-loop under this adjacency representation.
*/
func (g *Graph) ForEachEdge(cb func(e Edge) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[Edge]bool)
	g.nodes.forEachHandle(func(id uint64) bool {
		h := NewHandle(id, false)
		for _, n := range g.edges.follow(h, false) {
			e := EdgeHandle(h, n)
			if seen[e] {
				continue
			}
			seen[e] = true
			if !cb(e) {
				return false
			}
		}
		for _, p := range g.edges.follow(h, true) {
			e := EdgeHandle(p, h)
			if seen[e] {
				continue
			}
			seen[e] = true
			if !cb(e) {
				return false
			}
		}
		return true
	})
}

// ForEachPathHandle visits every live path, in creation order.
func (g *Graph) ForEachPathHandle(cb func(h PathHandle) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.paths.forEachPathHandle(cb)
}

// ForEachStepInPath visits every step of h in rank order, yielding the
// StepHandle and the handle it stepped on.
func (g *Graph) ForEachStepInPath(h PathHandle, cb func(s StepHandle, handle Handle) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.paths.forEachStepInPath(h, func(rank int64, nodeID uint64, reverse bool) bool {
		return cb(StepHandle{Path: h, Rank: rank}, NewHandle(nodeID, reverse))
	})
}

// ForEachStepOnHandle visits every occurrence of h's node across every
// path that steps on it, regardless of h's own orientation.
func (g *Graph) ForEachStepOnHandle(h Handle, cb func(s StepHandle) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.paths.forEachStepOnHandle(h.ID(), func(ref stepRef) bool {
		return cb(StepHandle{Path: ref.path, Rank: ref.rank})
	})
}

// HasNextStep reports whether s has a successor within its path.
func (g *Graph) HasNextStep(s StepHandle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, err := g.paths.stepCount(s.Path)
	if err != nil {
		return false
	}
	return s.Rank+1 < int64(n)
}

// HasPreviousStep reports whether s has a predecessor within its path.
func (g *Graph) HasPreviousStep(s StepHandle) bool {
	return s.Rank > 0
}

// GetNextStep returns the step following s in its path.
func (g *Graph) GetNextStep(s StepHandle) StepHandle {
	return StepHandle{Path: s.Path, Rank: s.Rank + 1}
}

// GetPreviousStep returns the step preceding s in its path.
func (g *Graph) GetPreviousStep(s StepHandle) StepHandle {
	return StepHandle{Path: s.Path, Rank: s.Rank - 1}
}

// GetPathHandleOfStep returns the path s belongs to.
func (g *Graph) GetPathHandleOfStep(s StepHandle) PathHandle {
	return s.Path
}
