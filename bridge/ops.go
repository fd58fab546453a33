/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package bridge

import "github.com/krotik/pangraph/pangraph"

// NodeCount, MinNodeID, MaxNodeID
// ================================

func NodeCount(id uint64) (int, error) {
	g, err := lookup(id)
	if err != nil {
		return 0, err
	}
	return g.NodeCount(), nil
}

func MinNodeID(id uint64) (uint64, error) {
	g, err := lookup(id)
	if err != nil {
		return 0, err
	}
	return g.MinNodeID(), nil
}

func MaxNodeID(id uint64) (uint64, error) {
	g, err := lookup(id)
	if err != nil {
		return 0, err
	}
	return g.MaxNodeID(), nil
}

// Existence predicates
// =====================

func HasNode(id uint64, node uint64) (bool, error) {
	g, err := lookup(id)
	if err != nil {
		return false, err
	}
	return g.HasNode(node), nil
}

func HasEdge(id uint64, left, right NodeHandle) (bool, error) {
	g, err := lookup(id)
	if err != nil {
		return false, err
	}
	return g.HasEdge(toHandle(left), toHandle(right)), nil
}

func HasPath(id uint64, name string) (bool, error) {
	g, err := lookup(id)
	if err != nil {
		return false, err
	}
	return g.HasPath(name), nil
}

func PathIsEmpty(id uint64, path PathHandleID) (bool, error) {
	g, err := lookup(id)
	if err != nil {
		return false, err
	}
	return g.PathIsEmpty(toPath(path))
}

// Handle accessors
// =================

func GetID(handle NodeHandle) uint64 {
	return toHandle(handle).ID()
}

func GetIsReverse(handle NodeHandle) bool {
	return toHandle(handle).IsReverse()
}

func Flip(handle NodeHandle) NodeHandle {
	return fromHandle(toHandle(handle).Flip())
}

func Forward(handle NodeHandle) NodeHandle {
	return fromHandle(toHandle(handle).Forward())
}

func GetLength(id uint64, handle NodeHandle) (int, error) {
	g, err := lookup(id)
	if err != nil {
		return 0, err
	}
	return g.GetLength(toHandle(handle))
}

func GetSequence(id uint64, handle NodeHandle) (string, error) {
	g, err := lookup(id)
	if err != nil {
		return "", err
	}
	return g.GetSequence(toHandle(handle))
}

// Edge accessors
// ===============

/*
EdgeFirstHandle and EdgeSecondHandle return the two sides of the canonical
edge between left and right, matching edge_first_handle/edge_second_handle
of the exposed operations list.
*/
func EdgeFirstHandle(left, right NodeHandle) NodeHandle {
	e := pangraph.EdgeHandle(toHandle(left), toHandle(right))
	return fromHandle(e.Left)
}

func EdgeSecondHandle(left, right NodeHandle) NodeHandle {
	e := pangraph.EdgeHandle(toHandle(left), toHandle(right))
	return fromHandle(e.Right)
}

// Iteration
// ==========

func IterateHandles(id uint64, cb func(handle NodeHandle) bool) error {
	g, err := lookup(id)
	if err != nil {
		return err
	}
	g.ForEachHandle(func(h pangraph.Handle) bool {
		return cb(fromHandle(h))
	}, false)
	return nil
}

func IterateEdges(id uint64, cb func(left, right NodeHandle) bool) error {
	g, err := lookup(id)
	if err != nil {
		return err
	}
	g.ForEachEdge(func(e pangraph.Edge) bool {
		return cb(fromHandle(e.Left), fromHandle(e.Right))
	})
	return nil
}

func IteratePaths(id uint64, cb func(path PathHandleID) bool) error {
	g, err := lookup(id)
	if err != nil {
		return err
	}
	g.ForEachPathHandle(func(p pangraph.PathHandle) bool {
		return cb(fromPath(p))
	})
	return nil
}

/*
IterateStepsOfPath visits every step of path in rank order.
*/
func IterateStepsOfPath(id uint64, path PathHandleID, cb func(step StepHandle, handle NodeHandle) bool) error {
	g, err := lookup(id)
	if err != nil {
		return err
	}
	return g.ForEachStepInPath(toPath(path), func(s pangraph.StepHandle, h pangraph.Handle) bool {
		return cb(fromStep(s), fromHandle(h))
	})
}

/*
IterateStepsOfHandle visits every occurrence of handle's node across every
path, regardless of handle's own orientation.
*/
func IterateStepsOfHandle(id uint64, handle NodeHandle, cb func(step StepHandle) bool) error {
	g, err := lookup(id)
	if err != nil {
		return err
	}
	g.ForEachStepOnHandle(toHandle(handle), func(s pangraph.StepHandle) bool {
		return cb(fromStep(s))
	})
	return nil
}

// Path lookup and naming
// ========================

func GetPathHandle(id uint64, name string) (PathHandleID, error) {
	g, err := lookup(id)
	if err != nil {
		return 0, err
	}
	p, err := g.GetPathHandle(name)
	return fromPath(p), err
}

func GetPathName(id uint64, path PathHandleID) (string, error) {
	g, err := lookup(id)
	if err != nil {
		return "", err
	}
	return g.GetPathName(toPath(path))
}

func GetPathStepCount(id uint64, path PathHandleID) (int, error) {
	g, err := lookup(id)
	if err != nil {
		return 0, err
	}
	return g.GetPathStepCount(toPath(path))
}

/*
GetStepCount returns the number of path occurrences of handle's node,
counted regardless of handle's own orientation.
*/
func GetStepCount(id uint64, handle NodeHandle) (int, error) {
	g, err := lookup(id)
	if err != nil {
		return 0, err
	}
	return g.GetStepCount(toHandle(handle))
}

// Step accessors
// ===============

/*
GetHandleOfStep, GetPathHandleOfStep, StepEquals mirror the exposed
operations list's step-handle/step-path/step-equality entries.
*/
func GetHandleOfStep(id uint64, step StepHandle) (NodeHandle, error) {
	g, err := lookup(id)
	if err != nil {
		return 0, err
	}
	h, err := g.GetHandleOfStep(toStep(step))
	return fromHandle(h), err
}

func GetPathHandleOfStep(step StepHandle) PathHandleID {
	return step.Path
}

func StepEquals(a, b StepHandle) bool {
	return a == b
}

/*
BeginStep and EndStep return the front-end and end sentinel steps of path:
rank -1 (represented as the wire value ^uint64(0), i.e. all ones) for the
front-end, and rank == step count for the end. BackStep returns the last
real step, or an ErrEmptyPath error if the path has no steps.
*/
func BeginStep(path PathHandleID) StepHandle {
	return StepHandle{Path: path, Rank: ^uint64(0)}
}

func EndStep(id uint64, path PathHandleID) (StepHandle, error) {
	n, err := GetPathStepCount(id, path)
	if err != nil {
		return StepHandle{}, err
	}
	return StepHandle{Path: path, Rank: uint64(n)}, nil
}

func BackStep(id uint64, path PathHandleID) (StepHandle, error) {
	n, err := GetPathStepCount(id, path)
	if err != nil {
		return StepHandle{}, err
	}
	if n == 0 {
		return StepHandle{}, pathEmptyError(id, path)
	}
	return StepHandle{Path: path, Rank: uint64(n - 1)}, nil
}

func pathEmptyError(id uint64, path PathHandleID) error {
	g, err := lookup(id)
	if err != nil {
		return err
	}
	if _, err := g.GetPathName(toPath(path)); err != nil {
		return err
	}
	return errEmptyPathAccess
}

/*
IsFrontEnd and IsEnd report whether step is one of the two sentinel steps.
*/
func IsFrontEnd(step StepHandle) bool {
	return step.Rank == ^uint64(0)
}

func IsEnd(id uint64, step StepHandle) (bool, error) {
	n, err := GetPathStepCount(id, step.Path)
	if err != nil {
		return false, err
	}
	return step.Rank == uint64(n), nil
}

func HasNextStep(id uint64, step StepHandle) (bool, error) {
	g, err := lookup(id)
	if err != nil {
		return false, err
	}
	return g.HasNextStep(toStep(step)), nil
}

func HasPreviousStep(step StepHandle) bool {
	return !IsFrontEnd(step) && step.Rank != 0
}

func NextStep(step StepHandle) StepHandle {
	return fromStep(pangraph.StepHandle{Path: toPath(step.Path), Rank: int64FromRank(step.Rank) + 1})
}

func PrevStep(step StepHandle) StepHandle {
	return fromStep(pangraph.StepHandle{Path: toPath(step.Path), Rank: int64FromRank(step.Rank) - 1})
}

func int64FromRank(r uint64) int64 {
	if r == ^uint64(0) {
		return -1
	}
	return int64(r)
}
