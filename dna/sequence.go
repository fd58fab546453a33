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
Package dna provides the alphabet and reverse-complement arithmetic shared
by every node sequence in the graph store. The alphabet is {A,C,G,T,N},
case preserved.
*/
package dna

import "fmt"

var complement = map[byte]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N',
	'a': 't', 't': 'a', 'c': 'g', 'g': 'c', 'n': 'n',
}

/*
IsValidBase returns true if b is a member of the DNA alphabet in either
case.
*/
func IsValidBase(b byte) bool {
	_, ok := complement[b]
	return ok
}

/*
Validate checks that every byte of seq is a valid DNA base and that seq is
not empty. Returns the offending byte's index on failure.
*/
func Validate(seq string) error {
	if len(seq) == 0 {
		return fmt.Errorf("sequence must not be empty")
	}
	for i := 0; i < len(seq); i++ {
		if !IsValidBase(seq[i]) {
			return fmt.Errorf("invalid base %q at offset %d", seq[i], i)
		}
	}
	return nil
}

/*
Complement returns the complementary base of b, preserving case.
*/
func Complement(b byte) byte {
	c, ok := complement[b]
	if !ok {
		return b
	}
	return c
}

/*
ReverseComplement returns the reverse complement of seq: reversed order,
each base complemented, case preserved.
*/
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	n := len(seq)
	for i := 0; i < n; i++ {
		out[n-1-i] = Complement(seq[i])
	}
	return string(out)
}
