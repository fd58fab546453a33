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

/*
IntString is a dynamic string of small integers, standing in for a
wavelet-tree over an alphabet of dynamic cardinality. It backs the node-id
slot vector and the concatenated base sequence.
*/
type IntString struct {
	syms []int
}

/*
NewIntString returns an empty integer string.
*/
func NewIntString() *IntString {
	return &IntString{}
}

/*
Len returns the number of symbols stored.
*/
func (s *IntString) Len() int {
	return len(s.syms)
}

/*
Access returns the symbol at position i.
*/
func (s *IntString) Access(i int) int {
	return s.syms[i]
}

/*
Set overwrites the symbol at position i without changing the string's
length.
*/
func (s *IntString) Set(i int, v int) {
	s.syms[i] = v
}

/*
Insert inserts symbol v at position i, shifting subsequent symbols right.
*/
func (s *IntString) Insert(i int, v int) {
	s.syms = append(s.syms, 0)
	copy(s.syms[i+1:], s.syms[i:])
	s.syms[i] = v
}

/*
Delete removes the symbol at position i, shifting subsequent symbols left.
*/
func (s *IntString) Delete(i int) {
	copy(s.syms[i:], s.syms[i+1:])
	s.syms = s.syms[:len(s.syms)-1]
}

/*
RankC counts occurrences of symbol c in [0, i).
*/
func (s *IntString) RankC(i int, c int) int {
	n := 0
	for j := 0; j < i; j++ {
		if s.syms[j] == c {
			n++
		}
	}
	return n
}

/*
SelectC returns the position of the k-th occurrence of symbol c (0-based).
Returns -1 if there is no such occurrence.
*/
func (s *IntString) SelectC(k int, c int) int {
	seen := 0
	for i, v := range s.syms {
		if v == c {
			if seen == k {
				return i
			}
			seen++
		}
	}
	return -1
}
