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

import (
	"errors"

	"github.com/krotik/pangraph/pgutil"
)

/*
ErrUnknownGraph is returned by every accessor when called with a graph id
that was never registered, or was already Free'd.
*/
var ErrUnknownGraph = errors.New("bridge: unknown or freed graph id")

// errEmptyPathAccess is returned by BackStep on a path with zero steps.
var errEmptyPathAccess = pgutil.New(pgutil.ErrEmptyPath, "back() on an empty path")
