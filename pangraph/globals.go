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

/*
VERSION of the graph engine core.
*/
const VERSION = 1

// Tombstone states for the dead vector
// =====================================

/*
DeadLive marks a base as live and visible to public reads.
*/
const DeadLive = 0

/*
DeadReferenced marks a base whose owning node was destroyed but which is
still referenced by at least one path step.
*/
const DeadReferenced = 1

/*
DeadReclaimable marks a base with no live node and no referencing path;
compaction may reclaim it.
*/
const DeadReclaimable = 2

// Graph events
// ============
//
// Every mutator that changes public state fires one of these on the
// graph's rule manager, if one is attached. Event payloads are documented
// next to their constant.

/*
EventNodeCreated fires after CreateHandle. Payload: the new node id.
*/
const EventNodeCreated = 0x01

/*
EventNodeDestroyed fires after DestroyHandle. Payload: the destroyed node id.
*/
const EventNodeDestroyed = 0x02

/*
EventEdgeCreated fires after CreateEdge. Payload: the created Edge.
*/
const EventEdgeCreated = 0x03

/*
EventEdgeDestroyed fires after DestroyEdge. Payload: the destroyed Edge.
*/
const EventEdgeDestroyed = 0x04

/*
EventPathCreated fires after CreatePathHandle. Payload: the new PathHandle.
*/
const EventPathCreated = 0x05

/*
EventPathDestroyed fires after DestroyPath. Payload: the destroyed PathHandle.
*/
const EventPathDestroyed = 0x06

/*
EventStepAppended fires after AppendStep. Payload: the new StepHandle.
*/
const EventStepAppended = 0x07

/*
EventNodeDivided fires after DivideHandle. Payload: the original node id
and the slice of new piece ids.
*/
const EventNodeDivided = 0x08

/*
EventOrientationApplied fires after ApplyOrientation. Payload: the node id.
*/
const EventOrientationApplied = 0x09
