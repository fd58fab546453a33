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

	"github.com/krotik/pangraph/dna"
	"github.com/krotik/pangraph/pgutil"
)

/*
GraphStats summarizes the graph's current size, reported by Stats.
*/
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	PathCount     int
	TotalBaseSize int
	MinNodeID     uint64
	MaxNodeID     uint64
}

/*
Graph is the succinct dynamic bidirected sequence graph: a node store, an
edge store and a path store sharing one id space, guarded by a single
reader/writer lock so that any number of readers may traverse concurrently
but mutation is always exclusive. This mirrors the single-writer,
multi-reader discipline the storage manager in the teacher's graph package
uses around its own file-backed structures.
*/
type Graph struct {
	mu sync.RWMutex

	nodes *nodeStore
	edges *edgeStore
	paths *pathStore

	rules *ruleSet
	log   Logger
}

/*
Logger is a function which processes log messages from the graph engine.
*/
type Logger func(v ...interface{})

/*
LogNull is a discarding logger, the default until SetLogger is called.
*/
func LogNull(v ...interface{}) {}

/*
NewGraph returns an empty graph with no rules attached and a discarding
logger.
*/
func NewGraph() *Graph {
	return &Graph{
		nodes: newNodeStore(),
		edges: newEdgeStore(),
		paths: newPathStore(),
		rules: newRuleSet(),
		log:   Logger(LogNull),
	}
}

/*
SetLogger attaches the logger used to report rule errors that fire() swallows.
*/
func (g *Graph) SetLogger(l Logger) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.log = l
}

/*
SetRule installs rule, replacing any existing rule of the same name.
*/
func (g *Graph) SetRule(rule Rule) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules.set(rule)
}

/*
Rules returns the names of every installed rule, sorted.
*/
func (g *Graph) Rules() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rules.names()
}

// fire dispatches event to every rule that handles it. A rule returning
// ErrEventHandled is not an error from the caller's perspective; any other
// error is logged and otherwise ignored, since mutators have already
// committed by the time their event fires.
func (g *Graph) fire(event int, payload ...interface{}) {
	g.mu.RLock()
	rs := g.rules
	log := g.log
	g.mu.RUnlock()

	if err := rs.dispatch(g, event, payload...); err != nil && err != ErrEventHandled {
		log("pangraph: rule error on event ", event, ": ", err)
	}
}

// Stats computes a snapshot of the graph's size. O(node count).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{MinNodeID: g.nodes.minID, MaxNodeID: g.nodes.maxID}
	g.nodes.forEachHandle(func(id uint64) bool {
		stats.NodeCount++
		if n, err := g.nodes.length(id); err == nil {
			stats.TotalBaseSize += n
		}
		stats.EdgeCount += g.edges.degree(NewHandle(id, false), false)
		stats.EdgeCount += g.edges.degree(NewHandle(id, false), true)
		return true
	})
	stats.EdgeCount /= 2

	g.paths.forEachPathHandle(func(h PathHandle) bool {
		stats.PathCount++
		return true
	})

	return stats
}

// GetHandle returns the forward (or, with reverse=true, reverse) handle
// naming node id.
func (g *Graph) GetHandle(id uint64, reverse bool) (Handle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.nodes.hasNode(id) {
		return 0, pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	return NewHandle(id, reverse), nil
}

// GetID returns the node id addressed by h.
func (g *Graph) GetID(h Handle) uint64 {
	return h.ID()
}

// GetIsReverse reports whether h views its node in reverse orientation.
func (g *Graph) GetIsReverse(h Handle) bool {
	return h.IsReverse()
}

// GetFlip returns h with its orientation toggled.
func (g *Graph) GetFlip(h Handle) Handle {
	return h.Flip()
}

// HasNode reports whether id names a live node.
func (g *Graph) HasNode(id uint64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes.hasNode(id)
}

// GetLength returns the number of bases in h's node.
func (g *Graph) GetLength(h Handle) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes.length(h.ID())
}

// GetSequence returns h's sequence, reverse-complemented if h is reverse.
func (g *Graph) GetSequence(h Handle) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	seq, err := g.nodes.forwardSequence(h.ID())
	if err != nil {
		return "", err
	}
	if h.IsReverse() {
		return dna.ReverseComplement(seq), nil
	}
	return seq, nil
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes.liveCount
}

// MinNodeID and MaxNodeID return the smallest and largest node id ever
// assigned (including tombstoned ids); both are zero on an empty graph.
func (g *Graph) MinNodeID() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes.minID
}

func (g *Graph) MaxNodeID() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes.maxID
}

// HasEdge reports whether an edge exists between left and right, in the
// orientation given.
func (g *Graph) HasEdge(left, right Handle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.edges.follow(left, false) {
		if n == right {
			return true
		}
	}
	return false
}

// PathCount returns the number of live paths.
func (g *Graph) PathCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	g.paths.forEachPathHandle(func(PathHandle) bool { n++; return true })
	return n
}

// HasPath reports whether name identifies a live path.
func (g *Graph) HasPath(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.paths.pathByName(name)
	return ok
}

// GetPathHandle looks up a path by name.
func (g *Graph) GetPathHandle(name string) (PathHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h, ok := g.paths.pathByName(name)
	if !ok {
		return 0, pgutil.New(pgutil.ErrNoSuchPath, name)
	}
	return h, nil
}

// GetPathName returns the name of path h.
func (g *Graph) GetPathName(h PathHandle) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.paths.pathName(h)
}

// GetPathStepCount returns the number of steps in path h.
func (g *Graph) GetPathStepCount(h PathHandle) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.paths.stepCount(h)
}

// PathIsEmpty reports whether path h has zero steps.
func (g *Graph) PathIsEmpty(h PathHandle) (bool, error) {
	n, err := g.GetPathStepCount(h)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// GetStepCount returns the number of path occurrences of h's node, counted
// regardless of h's own orientation.
func (g *Graph) GetStepCount(h Handle) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.nodes.hasNode(h.ID()) {
		return 0, pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	n := 0
	g.paths.forEachStepOnHandle(h.ID(), func(stepRef) bool { n++; return true })
	return n, nil
}

// GetHandleOfStep returns the oriented node handle stepped at s.
func (g *Graph) GetHandleOfStep(s StepHandle) (Handle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, reverse, err := g.paths.stepAt(s.Path, s.Rank)
	if err != nil {
		return 0, err
	}
	return NewHandle(id, reverse), nil
}
