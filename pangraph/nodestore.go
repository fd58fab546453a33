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
	"github.com/krotik/pangraph/bitvec"
	"github.com/krotik/pangraph/dna"
	"github.com/krotik/pangraph/pgutil"
)

/*
nodeRecord describes one slot of the id vector: the node id it names (if
any) and the base range in seqWT/boundary/dead it owns.
*/
type nodeRecord struct {
	id      uint64
	start   int
	length  int
	deleted bool
}

/*
nodeStore is the node/sequence backing representation, C3 of the graph
engine: a slot vector of node ids, the concatenated base sequence, a
boundary bitmap, and a tombstone run. slotOf is a performance cache from id
to slot index, analogous to the map cache eliasdb's own Manager keeps
alongside its primary index.
*/
type nodeStore struct {
	idWT     *bitvec.IntString
	seqWT    *bitvec.IntString
	boundary *bitvec.BitVector
	dead     *bitvec.RunLength

	slots  []nodeRecord
	slotOf map[uint64]int

	liveCount    int
	minID, maxID uint64
	hasAny       bool

	iterating bool // true while a serial for_each_handle is in progress
	iterSlot  int  // slot currently visited by a serial for_each_handle
}

func newNodeStore() *nodeStore {
	return &nodeStore{
		idWT:     bitvec.NewIntString(),
		seqWT:    bitvec.NewIntString(),
		boundary: bitvec.NewBitVector(),
		dead:     bitvec.NewRunLength(),
		slotOf:   make(map[uint64]int),
	}
}

func (ns *nodeStore) hasNode(id uint64) bool {
	slot, ok := ns.slotOf[id]
	return ok && !ns.slots[slot].deleted && ns.idWT.Access(slot) == int(id)
}

func (ns *nodeStore) record(id uint64) (nodeRecord, bool) {
	slot, ok := ns.slotOf[id]
	if !ok || ns.slots[slot].deleted {
		return nodeRecord{}, false
	}
	return ns.slots[slot], true
}

// forwardSequence returns the node's stored (forward) sequence, skipping
// any bases tombstoned since the node was created.
func (ns *nodeStore) forwardSequence(id uint64) (string, error) {
	rec, ok := ns.record(id)
	if !ok {
		return "", pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	buf := make([]byte, 0, rec.length)
	for p := rec.start; p < rec.start+rec.length; p++ {
		if ns.dead.Access(p) == DeadLive {
			buf = append(buf, byte(ns.seqWT.Access(p)))
		}
	}
	return string(buf), nil
}

func (ns *nodeStore) length(id uint64) (int, error) {
	seq, err := ns.forwardSequence(id)
	if err != nil {
		return 0, err
	}
	return len(seq), nil
}

// createHandle appends a new node slot, optionally at an explicit id.
// Explicit ids below the current minimum are accepted and extend the
// range, per the open question this spec resolves in favor of acceptance.
func (ns *nodeStore) createHandle(seq string, explicitID *uint64) (uint64, error) {
	if err := dna.Validate(seq); err != nil {
		return 0, pgutil.New(pgutil.ErrInvalidName, err.Error())
	}

	var id uint64
	if explicitID != nil {
		id = *explicitID
		if id == 0 {
			return 0, pgutil.New(pgutil.ErrDuplicateID, "node id 0 is reserved for the tombstone marker")
		}
		if ns.hasNode(id) {
			return 0, pgutil.New(pgutil.ErrDuplicateID, "")
		}
	} else if ns.hasAny {
		id = ns.maxID + 1
	} else {
		id = 1
	}

	start := ns.seqWT.Len()
	for i := 0; i < len(seq); i++ {
		ns.seqWT.Insert(start+i, int(seq[i]))
		ns.boundary.Insert(start+i, i == 0)
		ns.dead.Insert(start+i, DeadLive)
	}

	slot := ns.idWT.Len()
	ns.idWT.Insert(slot, int(id))
	ns.slots = append(ns.slots, nodeRecord{id: id, start: start, length: len(seq)})
	ns.slotOf[id] = slot

	ns.liveCount++
	if !ns.hasAny || id < ns.minID {
		ns.minID = id
	}
	if !ns.hasAny || id > ns.maxID {
		ns.maxID = id
	}
	ns.hasAny = true

	return id, nil
}

// destroyHandle tombstones the node's id slot. isReferenced tells the
// store whether some path still steps on this node, selecting between the
// two dead states. It does not touch the base positions' bytes.
func (ns *nodeStore) destroyHandle(id uint64, isReferenced bool) error {
	slot, ok := ns.slotOf[id]
	if !ok || ns.slots[slot].deleted {
		return pgutil.New(pgutil.ErrNoSuchNode, "")
	}

	rec := ns.slots[slot]
	mark := DeadReclaimable
	if isReferenced {
		mark = DeadReferenced
	}
	for p := rec.start; p < rec.start+rec.length; p++ {
		ns.dead.Set(p, mark)
	}

	ns.idWT.Set(slot, 0)
	ns.slots[slot].deleted = true
	delete(ns.slotOf, id)
	ns.liveCount--

	return nil
}

// divide splits the node's base range at the given local forward offsets
// (0 < offset < length, strictly increasing) into len(offsets)+1 new node
// slots, returning their ids in forward order. The original node's slot is
// tombstoned; its base positions are not moved.
func (ns *nodeStore) divide(id uint64, offsets []int) ([]uint64, error) {
	rec, ok := ns.record(id)
	if !ok {
		return nil, pgutil.New(pgutil.ErrNoSuchNode, "")
	}

	bounds := append([]int{0}, offsets...)
	bounds = append(bounds, rec.length)

	pieces := make([]uint64, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		pieceStart := rec.start + bounds[i]
		pieceLen := bounds[i+1] - bounds[i]

		var pieceID uint64
		if ns.hasAny {
			pieceID = ns.maxID + 1
		} else {
			pieceID = 1
		}

		slot := ns.idWT.Len()
		ns.idWT.Insert(slot, int(pieceID))
		ns.slots = append(ns.slots, nodeRecord{id: pieceID, start: pieceStart, length: pieceLen})
		ns.slotOf[pieceID] = slot

		ns.maxID = pieceID
		ns.hasAny = true
		ns.liveCount++
		pieces[i] = pieceID
	}

	oldSlot := ns.slotOf[id]
	ns.idWT.Set(oldSlot, 0)
	ns.slots[oldSlot].deleted = true
	delete(ns.slotOf, id)
	ns.liveCount--

	return pieces, nil
}

// applyOrientation rewrites the node's stored bytes to their reverse
// complement in place, in the same underlying base positions.
func (ns *nodeStore) applyOrientation(id uint64) error {
	rec, ok := ns.record(id)
	if !ok {
		return pgutil.New(pgutil.ErrNoSuchNode, "")
	}

	lo, hi := rec.start, rec.start+rec.length-1
	for lo < hi {
		a, b := byte(ns.seqWT.Access(lo)), byte(ns.seqWT.Access(hi))
		ns.seqWT.Set(lo, int(dna.Complement(b)))
		ns.seqWT.Set(hi, int(dna.Complement(a)))
		lo++
		hi--
	}
	if lo == hi {
		ns.seqWT.Set(lo, int(dna.Complement(byte(ns.seqWT.Access(lo)))))
	}
	return nil
}

// swapHandles exchanges the slot entries of two live nodes: their ids trade
// places in idWT/slots/slotOf, which moves where each is visited by
// forEachHandle, while leaving both nodes' own base ranges (and therefore
// their sequences) untouched.
func (ns *nodeStore) swapHandles(idA, idB uint64) error {
	slotA, ok := ns.slotOf[idA]
	if !ok || ns.slots[slotA].deleted {
		return pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	slotB, ok := ns.slotOf[idB]
	if !ok || ns.slots[slotB].deleted {
		return pgutil.New(pgutil.ErrNoSuchNode, "")
	}
	if slotA == slotB {
		return nil
	}

	ns.slots[slotA], ns.slots[slotB] = ns.slots[slotB], ns.slots[slotA]
	ns.idWT.Set(slotA, int(ns.slots[slotA].id))
	ns.idWT.Set(slotB, int(ns.slots[slotB].id))
	ns.slotOf[idA] = slotB
	ns.slotOf[idB] = slotA

	return nil
}

// forEachHandle visits every live node id in slot order.
func (ns *nodeStore) forEachHandle(cb func(id uint64) bool) bool {
	for slot := 0; slot < len(ns.slots); slot++ {
		if ns.slots[slot].deleted {
			continue
		}
		ns.iterating = true
		ns.iterSlot = slot
		cont := cb(ns.slots[slot].id)
		ns.iterating = false
		if !cont {
			return false
		}
	}
	return true
}
