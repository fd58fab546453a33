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
	"strings"

	"github.com/krotik/pangraph/bitvec"
	"github.com/krotik/pangraph/pgutil"
)

// pathNameDelimiter is reserved as the separator of the '$'-delimited name
// text that the name index stands in for; createPathHandle rejects any
// name containing it.
const pathNameDelimiter = '$'

/*
stepRef names one occurrence of a node within one path, used by the
cross-index to answer "which paths touch this node" without scanning every
path.
*/
type stepRef struct {
	path PathHandle
	rank int64
}

/*
pathRecord is one named path: parallel slices of the node ids and
orientations it steps through, in rank order. Deleting a step shifts every
later rank down by one, same as a slice delete.
*/
type pathRecord struct {
	name     string
	nodeIDs  []uint64
	reversed []bool
	deleted  bool
}

/*
pathStore is the named-path backing representation, C5 of the graph
engine: one compact array per path plus a cross-index from node id to every
(path, rank) pair that steps on it, used by destroy_handle to decide
whether a node is still referenced and by for_each_step_on_handle to
enumerate occurrences.
*/
type pathStore struct {
	names *bitvec.NameIndex

	paths  []pathRecord
	nextID PathHandle

	crossIndex map[uint64][]stepRef
}

func newPathStore() *pathStore {
	return &pathStore{
		names:      bitvec.NewNameIndex(),
		nextID:     1,
		crossIndex: make(map[uint64][]stepRef),
	}
}

func (ps *pathStore) hasPath(h PathHandle) bool {
	return h >= 1 && int(h) <= len(ps.paths) && !ps.paths[h-1].deleted
}

func (ps *pathStore) record(h PathHandle) (*pathRecord, bool) {
	if !ps.hasPath(h) {
		return nil, false
	}
	return &ps.paths[h-1], true
}

// createPathHandle registers a new, initially empty path under name, which
// must not already name a live path.
func (ps *pathStore) createPathHandle(name string) (PathHandle, error) {
	if name == "" {
		return 0, pgutil.New(pgutil.ErrInvalidName, "path name must not be empty")
	}
	if strings.ContainsRune(name, pathNameDelimiter) {
		return 0, pgutil.New(pgutil.ErrInvalidName, "path name must not contain '$'")
	}
	if _, ok := ps.names.Lookup(name); ok {
		return 0, pgutil.New(pgutil.ErrDuplicatePath, name)
	}

	h := ps.nextID
	ps.nextID++
	ps.paths = append(ps.paths, pathRecord{name: name})
	ps.names.Insert(name, int(h))

	return h, nil
}

func (ps *pathStore) pathByName(name string) (PathHandle, bool) {
	id, ok := ps.names.Lookup(name)
	if !ok {
		return 0, false
	}
	return PathHandle(id), true
}

func (ps *pathStore) pathName(h PathHandle) (string, error) {
	rec, ok := ps.record(h)
	if !ok {
		return "", pgutil.New(pgutil.ErrNoSuchPath, "")
	}
	return rec.name, nil
}

func (ps *pathStore) stepCount(h PathHandle) (int, error) {
	rec, ok := ps.record(h)
	if !ok {
		return 0, pgutil.New(pgutil.ErrNoSuchPath, "")
	}
	return len(rec.nodeIDs), nil
}

// appendStep appends one oriented visit to the end of the path, returning
// the StepHandle of the new occurrence.
func (ps *pathStore) appendStep(h PathHandle, nodeID uint64, reverse bool) (StepHandle, error) {
	rec, ok := ps.record(h)
	if !ok {
		return StepHandle{}, pgutil.New(pgutil.ErrNoSuchPath, "")
	}

	rank := int64(len(rec.nodeIDs))
	rec.nodeIDs = append(rec.nodeIDs, nodeID)
	rec.reversed = append(rec.reversed, reverse)

	ps.crossIndex[nodeID] = append(ps.crossIndex[nodeID], stepRef{path: h, rank: rank})

	return StepHandle{Path: h, Rank: rank}, nil
}

/*
spliceSteps replaces the single step at rank with the oriented node ids in
replacement, in order, shifting every later step's rank and rewriting the
cross-index entries it owns. Used by DivideHandle to turn one step into the
k+1 steps of a divided node.
*/
func (ps *pathStore) spliceSteps(h PathHandle, rank int64, replacement []uint64, reversedFlags []bool) error {
	rec, ok := ps.record(h)
	if !ok {
		return pgutil.New(pgutil.ErrNoSuchPath, "")
	}
	if rank < 0 || int(rank) >= len(rec.nodeIDs) {
		return pgutil.New(pgutil.ErrInvalidHandle, "step rank out of range")
	}

	oldID := rec.nodeIDs[rank]
	ps.removeCrossIndexEntry(oldID, h, rank)

	head := append([]uint64{}, rec.nodeIDs[:rank]...)
	tail := append([]uint64{}, rec.nodeIDs[rank+1:]...)
	headR := append([]bool{}, rec.reversed[:rank]...)
	tailR := append([]bool{}, rec.reversed[rank+1:]...)

	rec.nodeIDs = append(append(head, replacement...), tail...)
	rec.reversed = append(append(headR, reversedFlags...), tailR...)

	shift := int64(len(replacement)) - 1
	ps.shiftCrossIndexRanksAfter(h, rank, shift)

	for i, id := range replacement {
		ps.crossIndex[id] = append(ps.crossIndex[id], stepRef{path: h, rank: rank + int64(i)})
	}

	return nil
}

// shiftCrossIndexRanksAfter adds shift to the rank of every cross-index
// entry belonging to path h whose original rank was greater than afterRank.
func (ps *pathStore) shiftCrossIndexRanksAfter(h PathHandle, afterRank int64, shift int64) {
	if shift == 0 {
		return
	}
	for id, refs := range ps.crossIndex {
		for i, r := range refs {
			if r.path == h && r.rank > afterRank {
				ps.crossIndex[id][i].rank = r.rank + shift
			}
		}
	}
}

func (ps *pathStore) removeCrossIndexEntry(nodeID uint64, h PathHandle, rank int64) {
	refs := ps.crossIndex[nodeID]
	for i, r := range refs {
		if r.path == h && r.rank == rank {
			ps.crossIndex[nodeID] = append(refs[:i], refs[i+1:]...)
			return
		}
	}
}

// flipOrientation toggles the orientation bit of every step, in any path,
// that names nodeID, used when ApplyOrientation rewrites a node's sequence.
func (ps *pathStore) flipOrientation(nodeID uint64) {
	for _, ref := range ps.crossIndex[nodeID] {
		rec, ok := ps.record(ref.path)
		if !ok {
			continue
		}
		rec.reversed[ref.rank] = !rec.reversed[ref.rank]
	}
}

// isReferenced reports whether any live path still steps on nodeID.
func (ps *pathStore) isReferenced(nodeID uint64) bool {
	return len(ps.crossIndex[nodeID]) > 0
}

// destroyPath removes a path and every cross-index entry it owns.
func (ps *pathStore) destroyPath(h PathHandle) error {
	rec, ok := ps.record(h)
	if !ok {
		return pgutil.New(pgutil.ErrNoSuchPath, "")
	}
	for _, id := range rec.nodeIDs {
		ps.removeAllCrossIndexEntriesForPath(id, h)
	}
	ps.names.Delete(rec.name)
	rec.deleted = true
	rec.nodeIDs = nil
	rec.reversed = nil
	return nil
}

func (ps *pathStore) removeAllCrossIndexEntriesForPath(nodeID uint64, h PathHandle) {
	refs := ps.crossIndex[nodeID]
	kept := refs[:0]
	for _, r := range refs {
		if r.path != h {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		delete(ps.crossIndex, nodeID)
	} else {
		ps.crossIndex[nodeID] = kept
	}
}

// stepAt returns the node id and orientation stepped at (h, rank).
func (ps *pathStore) stepAt(h PathHandle, rank int64) (uint64, bool, error) {
	rec, ok := ps.record(h)
	if !ok {
		return 0, false, pgutil.New(pgutil.ErrNoSuchPath, "")
	}
	if rank < 0 || int(rank) >= len(rec.nodeIDs) {
		return 0, false, pgutil.New(pgutil.ErrInvalidHandle, "step rank out of range")
	}
	return rec.nodeIDs[rank], rec.reversed[rank], nil
}

// forEachPathHandle visits every live path in creation order.
func (ps *pathStore) forEachPathHandle(cb func(h PathHandle) bool) bool {
	for i := range ps.paths {
		if ps.paths[i].deleted {
			continue
		}
		if !cb(PathHandle(i + 1)) {
			return false
		}
	}
	return true
}

// forEachStepInPath visits every step of h in rank order.
func (ps *pathStore) forEachStepInPath(h PathHandle, cb func(rank int64, nodeID uint64, reverse bool) bool) error {
	rec, ok := ps.record(h)
	if !ok {
		return pgutil.New(pgutil.ErrNoSuchPath, "")
	}
	for i := range rec.nodeIDs {
		if !cb(int64(i), rec.nodeIDs[i], rec.reversed[i]) {
			break
		}
	}
	return nil
}

// forEachStepOnHandle visits every occurrence of nodeID across all paths,
// in a deterministic (path, rank) order.
func (ps *pathStore) forEachStepOnHandle(nodeID uint64, cb func(ref stepRef) bool) {
	refs := append([]stepRef{}, ps.crossIndex[nodeID]...)
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].path != refs[j].path {
			return refs[i].path < refs[j].path
		}
		return refs[i].rank < refs[j].rank
	})
	for _, ref := range refs {
		if !cb(ref) {
			return
		}
	}
}
