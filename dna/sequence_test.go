/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package dna

import "testing"

func TestReverseComplement(t *testing.T) {
	if got := ReverseComplement("GATTACA"); got != "TGTAATC" {
		t.Errorf("unexpected reverse complement: %v", got)
	}

	if got := ReverseComplement("acgtN"); got != "NacgT" {
		t.Errorf("case should be preserved: %v", got)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	for _, s := range []string{"GATTACA", "acgtACGTnN", "A"} {
		if got := ReverseComplement(ReverseComplement(s)); got != s {
			t.Errorf("reverse complement is not an involution for %v: got %v", s, got)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(""); err == nil {
		t.Error("expected error for empty sequence")
	}

	if err := Validate("GATTACA"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := Validate("GATXACA"); err == nil {
		t.Error("expected error for invalid base")
	}
}
