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
Package bitvec provides the dynamic indexed bit/integer vector primitives
the graph store is layered on: a rank/select bit vector, a wavelet-tree-like
integer string, a run-length integer string tuned for the tombstone vector,
and a self-indexed name index for path-name lookup.

None of these are balanced-tree succinct structures. The graph store's
contracts only require rank/select/insert/delete with well-defined
semantics, not a particular asymptotic bound, and a slice-backed
implementation with a lazily rebuilt rank cache is far easier to verify by
inspection than a dynamic succinct tree. Mutation is O(n) instead of
O(log n). BitVector's rank is O(1) and its select O(log n) once its cache
is warm; IntString and RunLength answer rank and select by a linear scan.
*/
package bitvec

import "sort"

/*
BitVector is a dynamic bit vector supporting positional access, rank,
select, insert and delete.
*/
type BitVector struct {
	bits  []bool
	ranks []int // ranks[i] = number of set bits in bits[0:i]; len(ranks) == len(bits)+1
	dirty bool
}

/*
NewBitVector returns an empty bit vector.
*/
func NewBitVector() *BitVector {
	return &BitVector{ranks: []int{0}}
}

/*
Len returns the number of bits stored.
*/
func (b *BitVector) Len() int {
	return len(b.bits)
}

func (b *BitVector) rebuild() {
	if !b.dirty {
		return
	}
	b.ranks = make([]int, len(b.bits)+1)
	count := 0
	for i, v := range b.bits {
		b.ranks[i] = count
		if v {
			count++
		}
	}
	b.ranks[len(b.bits)] = count
	b.dirty = false
}

/*
Access returns the bit at position i.
*/
func (b *BitVector) Access(i int) bool {
	return b.bits[i]
}

/*
Set overwrites the bit at position i without changing the vector's length.
*/
func (b *BitVector) Set(i int, v bool) {
	if b.bits[i] == v {
		return
	}
	b.bits[i] = v
	b.dirty = true
}

/*
Rank1 counts the set bits in [0, i).
*/
func (b *BitVector) Rank1(i int) int {
	b.rebuild()
	return b.ranks[i]
}

/*
Rank0 counts the unset bits in [0, i).
*/
func (b *BitVector) Rank0(i int) int {
	return i - b.Rank1(i)
}

/*
Select1 returns the position of the k-th set bit (0-based). Returns -1 if
there is no such bit.
*/
func (b *BitVector) Select1(k int) int {
	b.rebuild()
	if k < 0 || k >= b.ranks[len(b.ranks)-1] {
		return -1
	}
	i := sort.Search(len(b.ranks), func(i int) bool { return b.ranks[i] > k })
	return i - 1
}

/*
Select0 returns the position of the k-th unset bit (0-based). Returns -1 if
there is no such bit.
*/
func (b *BitVector) Select0(k int) int {
	total := len(b.bits) - b.Rank1(len(b.bits))
	if k < 0 || k >= total {
		return -1
	}
	lo, hi := 0, len(b.bits)
	for lo < hi {
		mid := (lo + hi) / 2
		if b.Rank0(mid+1) > k {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

/*
Insert inserts bit v at position i, shifting subsequent bits to the right.
*/
func (b *BitVector) Insert(i int, v bool) {
	b.bits = append(b.bits, false)
	copy(b.bits[i+1:], b.bits[i:])
	b.bits[i] = v
	b.dirty = true
}

/*
Delete removes the bit at position i, shifting subsequent bits to the left.
*/
func (b *BitVector) Delete(i int) {
	copy(b.bits[i:], b.bits[i+1:])
	b.bits = b.bits[:len(b.bits)-1]
	b.dirty = true
}
