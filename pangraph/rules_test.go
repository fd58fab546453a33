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

import (
	"sync"
	"testing"
)

type countingRule struct {
	name   string
	events []int
	mu     sync.Mutex
	seen   int
}

func (r *countingRule) Name() string    { return r.name }
func (r *countingRule) Handles() []int  { return r.events }
func (r *countingRule) Handle(g *Graph, event int, payload ...interface{}) error {
	r.mu.Lock()
	r.seen++
	r.mu.Unlock()
	return nil
}

func TestRuleFiresOnCreateHandle(t *testing.T) {
	g := NewGraph()
	rule := &countingRule{name: "count.created", events: []int{EventNodeCreated}}
	g.SetRule(rule)

	if _, err := g.CreateHandle("ACGT", nil); err != nil {
		t.Fatal(err)
	}

	rule.mu.Lock()
	seen := rule.seen
	rule.mu.Unlock()
	if seen != 1 {
		t.Errorf("rule saw %d events, want 1", seen)
	}
	if names := g.Rules(); len(names) != 1 || names[0] != "count.created" {
		t.Errorf("Rules() = %v, want [count.created]", names)
	}
}

type refusingRule struct{}

func (refusingRule) Name() string   { return "refuse" }
func (refusingRule) Handles() []int { return []int{EventNodeDestroyed} }
func (refusingRule) Handle(g *Graph, event int, payload ...interface{}) error {
	return ErrEventHandled
}

func TestRuleErrEventHandledIsNotLogged(t *testing.T) {
	g := NewGraph()
	var loggedCalls int
	g.SetLogger(func(v ...interface{}) { loggedCalls++ })
	g.SetRule(refusingRule{})

	h, _ := g.CreateHandle("AAA", nil)
	if err := g.DestroyHandle(h); err != nil {
		t.Fatal(err)
	}
	if loggedCalls != 0 {
		t.Errorf("logger called %d times, want 0 (ErrEventHandled should not be logged)", loggedCalls)
	}
}
