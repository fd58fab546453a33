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
Package pgutil contains the error taxonomy shared by the graph core and its
surrounding packages.

GraphError

Models a graph related error. Low-level errors should be wrapped in a
GraphError before they are returned to a client.
*/
package pgutil

import (
	"errors"
	"fmt"
)

/*
GraphError is a graph related error. Type is one of the sentinel errors
below and should be used for errors.Is checks; Detail carries a
human-readable extra description.
*/
type GraphError struct {
	Type   error
	Detail string
}

/*
Error returns a human-readable string representation of this error.
*/
func (ge *GraphError) Error() string {
	if ge.Detail != "" {
		return fmt.Sprintf("GraphError: %v (%v)", ge.Type, ge.Detail)
	}
	return fmt.Sprintf("GraphError: %v", ge.Type)
}

/*
Unwrap exposes the sentinel error type for errors.Is / errors.As.
*/
func (ge *GraphError) Unwrap() error {
	return ge.Type
}

/*
Sentinel graph error kinds, per the error handling design.
*/
var (
	ErrNoSuchNode      = errors.New("no such node")
	ErrNoSuchPath      = errors.New("no such path")
	ErrNoSuchEdge      = errors.New("no such edge")
	ErrDuplicateID     = errors.New("duplicate node id")
	ErrDuplicatePath   = errors.New("duplicate path name")
	ErrInvalidName     = errors.New("invalid path name")
	ErrInvalidHandle   = errors.New("use of invalidated handle")
	ErrEmptyPath       = errors.New("operation not valid on an empty path")
	ErrIllegalMutation = errors.New("mutation not permitted during current iteration")
)

/*
New wraps a sentinel error kind with a detail string.
*/
func New(kind error, detail string) *GraphError {
	return &GraphError{Type: kind, Detail: detail}
}
