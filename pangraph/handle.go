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
Package pangraph implements the succinct dynamic bidirected sequence graph
described by the graph engine's core: nodes carrying DNA sequences, edges
joining node ends on either strand, and named paths of oriented steps.

Handle algebra

A Handle is an opaque token for an oriented node: a node id and a strand
bit packed into a single integer, id<<1 | reverse. Flip, Forward and the
canonical edge/step arithmetic operate purely on these integers and never
touch the graph.

Node store, edge store, path store

The Graph type owns three cooperating stores — nodes, edges and paths —
layered on the rank/select vectors of package bitvec. Every store addresses
nodes by identifier, never by internal slot, so handles and step tokens
outlive compaction.
*/
package pangraph

import "fmt"

/*
Handle is an opaque token denoting a node viewed in one of two
orientations. Two handles are equal iff they name the same node in the
same orientation; a Handle is safe to use as a map key.
*/
type Handle uint64

/*
NewHandle packs a node id and orientation into a Handle.
*/
func NewHandle(id uint64, reverse bool) Handle {
	h := Handle(id) << 1
	if reverse {
		h |= 1
	}
	return h
}

/*
ID returns the node id addressed by h.
*/
func (h Handle) ID() uint64 {
	return uint64(h) >> 1
}

/*
IsReverse reports whether h views its node in reverse orientation.
*/
func (h Handle) IsReverse() bool {
	return uint64(h)&1 == 1
}

/*
Flip toggles the orientation of h.
*/
func (h Handle) Flip() Handle {
	return h ^ 1
}

/*
Forward returns h normalized to forward orientation.
*/
func (h Handle) Forward() Handle {
	return h &^ 1
}

/*
String renders h as "<id>" or "<id>r" for a reverse handle, useful for
diagnostics.
*/
func (h Handle) String() string {
	if h.IsReverse() {
		return fmt.Sprintf("%dr", h.ID())
	}
	return fmt.Sprintf("%d", h.ID())
}

/*
Edge is the canonical ordered handle pair representing an edge: the right
side of Left connects to the left side of Right.
*/
type Edge struct {
	Left  Handle
	Right Handle
}

// boolLE reports a <= b treating false < true.
func boolLE(a, b bool) bool {
	if !a {
		return true
	}
	return b
}

/*
EdgeHandle returns the canonical ordered pair for the edge {left's right
side, right's left side}. The pair (a, b) is canonical iff id(a) < id(b),
or id(a) == id(b) and is_reverse(a) <= is_reverse(b); otherwise the
equivalent pair (flip(b), flip(a)) is returned.
*/
func EdgeHandle(left, right Handle) Edge {
	idL, idR := left.ID(), right.ID()
	canonical := idL < idR || (idL == idR && boolLE(left.IsReverse(), right.IsReverse()))
	if canonical {
		return Edge{Left: left, Right: right}
	}
	return Edge{Left: right.Flip(), Right: left.Flip()}
}

/*
TraverseEdgeHandle returns the outward handle at the far end of e, given
one of its two inward endpoint handles (e.Left, or flip(e.Right)).
*/
func TraverseEdgeHandle(e Edge, into Handle) Handle {
	if into == e.Left {
		return e.Right
	}
	return e.Left.Flip()
}

/*
PathHandle is an opaque token for a named path. The zero value never names
a live path.
*/
type PathHandle uint64

/*
StepHandle identifies one visit within one path by (path, rank). Rank -1
denotes the front-end sentinel (one before the first step); rank equal to
the path's length denotes the end sentinel (one past the last step).
*/
type StepHandle struct {
	Path PathHandle
	Rank int64
}
