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
	"sort"

	"github.com/krotik/pangraph/pgutil"
)

/*
CreateHandle inserts a new node carrying seq, returning its forward handle.
If id is non-nil it is used as the node's identifier (extending the id
range below min_node_id is accepted); otherwise one is auto-assigned.
*/
func (g *Graph) CreateHandle(seq string, id *uint64) (Handle, error) {
	g.mu.Lock()
	newID, err := g.nodes.createHandle(seq, id)
	g.mu.Unlock()
	if err != nil {
		return 0, err
	}
	g.fire(EventNodeCreated, newID)
	return NewHandle(newID, false), nil
}

/*
DestroyHandle removes a node: its incident edges are destroyed first, then
its bases are tombstoned. The bases are marked DeadReferenced if some path
step still names the node, DeadReclaimable otherwise; either way they stay
in storage and are no longer readable through the node. Path steps naming
the node keep their node id and orientation. Forbidden for the node currently driving
follow_edges; a node visited mid for_each_handle has no such guard.
*/
func (g *Graph) DestroyHandle(h Handle) error {
	g.mu.Lock()

	id := h.ID()
	if !g.nodes.hasNode(id) {
		g.mu.Unlock()
		return pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	if g.edges.iterating && g.edges.iteratingNodeID == id {
		g.mu.Unlock()
		return pgutil.New(pgutil.ErrIllegalMutation, "destroy_handle called on the node currently driving follow_edges")
	}

	var destroyed []Edge
	g.edges.destroyAllIncident(id, func(left, right Handle) {
		destroyed = append(destroyed, EdgeHandle(left, right))
	})

	referenced := g.paths.isReferenced(id)
	err := g.nodes.destroyHandle(id, referenced)
	g.mu.Unlock()

	if err != nil {
		return err
	}
	for _, e := range destroyed {
		g.fire(EventEdgeDestroyed, e)
	}
	g.fire(EventNodeDestroyed, id)
	return nil
}

/*
CreateEdge inserts the edge {right of left, left of right} into both
endpoints' adjacency lists. Idempotent.
*/
func (g *Graph) CreateEdge(left, right Handle) error {
	g.mu.Lock()
	if !g.nodes.hasNode(left.ID()) || !g.nodes.hasNode(right.ID()) {
		g.mu.Unlock()
		return pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	g.edges.create(left, right)
	g.mu.Unlock()

	g.fire(EventEdgeCreated, EdgeHandle(left, right))
	return nil
}

/*
DestroyEdge removes the edge {right of left, left of right}, a no-op if
absent. Forbidden while follow_edges is iterating the adjacency list of
either endpoint, per the spec's resolution of its own open question.
*/
func (g *Graph) DestroyEdge(left, right Handle) error {
	g.mu.Lock()
	if g.edges.iterating && (g.edges.iteratingNodeID == left.ID() || g.edges.iteratingNodeID == right.ID()) {
		g.mu.Unlock()
		return pgutil.New(pgutil.ErrIllegalMutation, "destroy_edge called on the node currently driving follow_edges")
	}
	g.edges.destroy(left, right)
	g.mu.Unlock()

	g.fire(EventEdgeDestroyed, EdgeHandle(left, right))
	return nil
}

/*
ApplyOrientation rewrites h's node to its reverse complement in place and
returns the fresh forward handle for the (now different) forward sequence.
Every path step naming the node has its orientation bit flipped so that
the sequence each path step resolves to is unchanged.
*/
func (g *Graph) ApplyOrientation(h Handle) (Handle, error) {
	g.mu.Lock()
	id := h.ID()
	if err := g.nodes.applyOrientation(id); err != nil {
		g.mu.Unlock()
		return 0, err
	}
	g.paths.flipOrientation(id)
	g.mu.Unlock()

	g.fire(EventOrientationApplied, id)
	return NewHandle(id, false), nil
}

/*
DivideHandle splits h's node at the given forward-strand offsets into
len(offsets)+1 pieces, each a freshly minted node id referencing a
sub-range of the original's bases. Incident edges are reattached to the
first and last piece; internal edges connect consecutive pieces in
sequence order. Every path step naming h's node is replaced in place by
the corresponding run of piece steps, walked in the order that step's own
orientation implies. Returns the new piece ids in left-to-right (forward-strand)
order.
*/
func (g *Graph) DivideHandle(h Handle, offsets []int) ([]uint64, error) {
	g.mu.Lock()

	id := h.ID()
	rec, ok := g.nodes.record(id)
	if !ok {
		g.mu.Unlock()
		return nil, pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	for i, o := range offsets {
		if o <= 0 || o >= rec.length {
			g.mu.Unlock()
			return nil, pgutil.New(pgutil.ErrInvalidHandle, "offsets must fall strictly inside the node's length")
		}
		if i > 0 && o <= offsets[i-1] {
			g.mu.Unlock()
			return nil, pgutil.New(pgutil.ErrInvalidHandle, "offsets must be strictly increasing")
		}
	}

	forward := NewHandle(id, false)
	leftNeighbors := append([]Handle{}, g.edges.follow(forward, true)...)
	rightNeighbors := append([]Handle{}, g.edges.follow(forward, false)...)

	g.edges.destroyAllIncident(id, func(Handle, Handle) {})

	pieces, err := g.nodes.divide(id, offsets)
	if err != nil {
		g.mu.Unlock()
		return nil, err
	}

	firstPiece := NewHandle(pieces[0], false)
	lastPiece := NewHandle(pieces[len(pieces)-1], false)

	for _, n := range leftNeighbors {
		g.edges.create(n, firstPiece)
	}
	for _, n := range rightNeighbors {
		g.edges.create(lastPiece, n)
	}
	for i := 0; i+1 < len(pieces); i++ {
		g.edges.create(NewHandle(pieces[i], false), NewHandle(pieces[i+1], false))
	}

	// Splice path steps: a step visiting the node in reverse walks its
	// pieces back to front, each piece's own orientation flipped, so the
	// path's resolved sequence is unchanged.
	forwardOrder := append([]uint64{}, pieces...)
	orientedIDs := make([]uint64, len(forwardOrder))
	orientedRev := make([]bool, len(forwardOrder))
	if !h.IsReverse() {
		copy(orientedIDs, forwardOrder)
		for i := range orientedRev {
			orientedRev[i] = false
		}
	} else {
		for i, p := range forwardOrder {
			orientedIDs[len(forwardOrder)-1-i] = p
			orientedRev[len(forwardOrder)-1-i] = true
		}
	}

	// Snapshot, then splice in descending-rank order per path: splicing at
	// rank r only shifts ranks > r, so processing the highest surviving
	// rank first means every not-yet-processed entry still matches its
	// current live position.
	refs := append([]stepRef{}, g.paths.crossIndex[id]...)
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].path != refs[j].path {
			return refs[i].path < refs[j].path
		}
		return refs[i].rank > refs[j].rank
	})
	for _, ref := range refs {
		ids, revs := orientedIDs, orientedRev
		if _, stepRev, err := g.paths.stepAt(ref.path, ref.rank); err == nil && stepRev != h.IsReverse() {
			ids, revs = make([]uint64, len(orientedIDs)), make([]bool, len(orientedRev))
			for i := range orientedIDs {
				ids[len(ids)-1-i], revs[len(revs)-1-i] = orientedIDs[i], !orientedRev[i]
			}
		}
		g.paths.spliceSteps(ref.path, ref.rank, ids, revs)
	}

	g.mu.Unlock()

	g.fire(EventNodeDivided, struct {
		Original uint64
		Pieces   []uint64
	}{id, pieces})

	return pieces, nil
}

// snapshotCrossIndex copies the cross-index entries for nodeID before
// mutating them, since spliceSteps rewrites ranks for the same path as it
// goes and a live map iteration would see its own edits.
func snapshotCrossIndex(ps *pathStore, nodeID uint64) map[uint64][]stepRef {
	return map[uint64][]stepRef{nodeID: append([]stepRef{}, ps.crossIndex[nodeID]...)}
}

/*
CreatePathHandle registers a new, empty path under name.
*/
func (g *Graph) CreatePathHandle(name string) (PathHandle, error) {
	g.mu.Lock()
	h, err := g.paths.createPathHandle(name)
	g.mu.Unlock()
	if err != nil {
		return 0, err
	}
	g.fire(EventPathCreated, h)
	return h, nil
}

/*
AppendStep appends a visit to node, oriented as given, to the end of path.
*/
func (g *Graph) AppendStep(path PathHandle, node Handle) (StepHandle, error) {
	g.mu.Lock()
	if !g.nodes.hasNode(node.ID()) {
		g.mu.Unlock()
		return StepHandle{}, pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	s, err := g.paths.appendStep(path, node.ID(), node.IsReverse())
	g.mu.Unlock()
	if err != nil {
		return StepHandle{}, err
	}
	g.fire(EventStepAppended, s)
	return s, nil
}

/*
DestroyPath removes a path and every cross-index entry it owns. The dead
marks of bases of already destroyed nodes are left as they are: bases
marked DeadReferenced stay so even when this path was their last
reference, and no compaction pass reclaims them.
*/
func (g *Graph) DestroyPath(h PathHandle) error {
	g.mu.Lock()
	err := g.paths.destroyPath(h)
	g.mu.Unlock()
	if err != nil {
		return err
	}
	g.fire(EventPathDestroyed, h)
	return nil
}

/*
SwapHandles reorders the internal slots of two live nodes. It is
observable only through for_each_handle's visiting order: get_id,
get_sequence and every edge or path step referring to a or b keep
resolving to exactly the same content as before the call, since neither
node's base range moves. Used by callers renumbering nodes after an
external sort without disturbing anything that addresses them by id.
*/
func (g *Graph) SwapHandles(a, b Handle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nodes.swapHandles(a.ID(), b.ID())
}

/*
Clear removes every node, edge and path, resetting the graph to its
zero-value state including its id range.
*/
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = newNodeStore()
	g.edges = newEdgeStore()
	g.paths = newPathStore()
}
