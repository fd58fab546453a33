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
Package bridge is the foreign-call boundary of the graph engine: every
value crossing it is a plain integer, never a Go pointer or interface, so
the package is safe to expose through cgo exports or any other FFI layer
that only understands fixed-width integers. A loaded graph is itself
addressed by an opaque integer handle rather than a pointer, mirroring the
core's own handle algebra one level up.

NodeHandle, PathHandleID and StepHandle here are the wire-sized counterparts
of pangraph.Handle, pangraph.PathHandle and pangraph.StepHandle: same
bit layout, but named and typed independently so that this package's
contract does not shift if the core's internal representation ever does.
*/
package bridge

import (
	"sync"

	"github.com/krotik/pangraph/pangraph"
	"github.com/krotik/pangraph/persist"
)

/*
Version reports the graph engine's wire version, for FFI callers that need
to check compatibility before doing anything else.
*/
func Version() int {
	return pangraph.VERSION
}

/*
Handle sizes in bytes, for FFI callers laying out foreign structs.
*/
const (
	SizeofNodeHandle = 8
	SizeofPathHandle = 8
	SizeofStepHandle = 16 // two uint64s: path, rank
	SizeofGraphID    = 8
)

/*
NodeHandle is the wire form of pangraph.Handle.
*/
type NodeHandle = uint64

/*
PathHandleID is the wire form of pangraph.PathHandle.
*/
type PathHandleID = uint64

/*
StepHandle is the wire form of pangraph.StepHandle: a 128-bit composite
expressed as two uint64s, since Go has no native 128-bit integer.
*/
type StepHandle struct {
	Path uint64
	Rank uint64
}

var (
	registryMu sync.Mutex
	registry   = make(map[uint64]*pangraph.Graph)
	nextID     uint64
)

/*
New registers an empty graph and returns its opaque graph id.
*/
func New() uint64 {
	return register(pangraph.NewGraph())
}

/*
Load reads a snapshot from path (via persist.LoadFile) and registers the
resulting graph, returning its opaque graph id. The pair with Free bounds
the graph's lifetime the way the original's load/free pair does.
*/
func Load(path string) (uint64, error) {
	g, err := persist.LoadFile(path)
	if err != nil {
		return 0, err
	}
	return register(g), nil
}

/*
Save writes the graph named by id to path via persist.SaveFile.
*/
func Save(id uint64, path string) error {
	g, err := lookup(id)
	if err != nil {
		return err
	}
	return persist.SaveFile(g, path)
}

/*
Free releases the graph named by id. Using id after Free is a caller bug;
every accessor below returns ErrUnknownGraph rather than panicking on a
freed or never-registered id.
*/
func Free(id uint64) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, id)
}

func register(g *pangraph.Graph) uint64 {
	registryMu.Lock()
	defer registryMu.Unlock()
	nextID++
	registry[nextID] = g
	return nextID
}

func lookup(id uint64) (*pangraph.Graph, error) {
	registryMu.Lock()
	g, ok := registry[id]
	registryMu.Unlock()
	if !ok {
		return nil, ErrUnknownGraph
	}
	return g, nil
}

func toHandle(h NodeHandle) pangraph.Handle    { return pangraph.Handle(h) }
func fromHandle(h pangraph.Handle) NodeHandle  { return uint64(h) }
func toPath(p PathHandleID) pangraph.PathHandle { return pangraph.PathHandle(p) }
func fromPath(p pangraph.PathHandle) PathHandleID { return uint64(p) }

func toStep(s StepHandle) pangraph.StepHandle {
	return pangraph.StepHandle{Path: toPath(s.Path), Rank: int64(s.Rank)}
}

func fromStep(s pangraph.StepHandle) StepHandle {
	return StepHandle{Path: fromPath(s.Path), Rank: uint64(s.Rank)}
}
