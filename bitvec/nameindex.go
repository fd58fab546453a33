/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package bitvec

import "strings"

/*
NameIndex is a self-indexed text: it supports inserting a name, exact
lookup, deletion and prefix search, standing in for the self-indexed FM
index over a '$'-delimited name blob. Path names are few relative to graph
bases, so a hash lookup plus an ordered slice for prefix scans is
sufficient without maintaining an FM index.
*/
type NameIndex struct {
	byName map[string]int
	order  []string // creation order, for stable enumeration
}

/*
NewNameIndex returns an empty name index.
*/
func NewNameIndex() *NameIndex {
	return &NameIndex{byName: make(map[string]int)}
}

/*
Insert associates name with id. It is the caller's responsibility to ensure
name is not already present.
*/
func (n *NameIndex) Insert(name string, id int) {
	n.byName[name] = id
	n.order = append(n.order, name)
}

/*
Lookup returns the id associated with name, if any.
*/
func (n *NameIndex) Lookup(name string) (int, bool) {
	id, ok := n.byName[name]
	return id, ok
}

/*
Delete removes name from the index.
*/
func (n *NameIndex) Delete(name string) {
	delete(n.byName, name)
	for i, v := range n.order {
		if v == name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

/*
PrefixSearch returns every currently-indexed name with the given prefix, in
insertion order.
*/
func (n *NameIndex) PrefixSearch(prefix string) []string {
	var out []string
	for _, name := range n.order {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

/*
Names returns every currently-indexed name in insertion order.
*/
func (n *NameIndex) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}
