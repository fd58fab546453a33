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
	"errors"
	"sort"
)

/*
ErrEventHandled is returned by a Rule to signal that it has fully handled
an event; fire treats it as success rather than logging it.
*/
var ErrEventHandled = errors.New("event was handled by a rule")

/*
Rule models a graph rule: a piece of logic invoked synchronously whenever
one of the events it declares interest in fires. A rule that needs to
queue work or cross a process boundary (an ECAL condition-action script, a
websocket fan-out) must do so without blocking the caller — Handle runs
on the mutating goroutine, after the mutator has released the graph's
lock and before the mutator returns.
*/
type Rule interface {
	// Name returns the rule's name, used as its key in the rule set.
	Name() string

	// Handles returns the events this rule wants to observe.
	Handles() []int

	// Handle processes one firing of event, with its documented payload.
	Handle(g *Graph, event int, payload ...interface{}) error
}

/*
ruleSet dispatches graph events to every rule registered for them, mirroring
the graph package's own rule manager: rules are indexed both by name and,
for dispatch, by the event they declare interest in.
*/
type ruleSet struct {
	rules    map[string]Rule
	eventMap map[int]map[string]Rule
}

func newRuleSet() *ruleSet {
	return &ruleSet{
		rules:    make(map[string]Rule),
		eventMap: make(map[int]map[string]Rule),
	}
}

func (rs *ruleSet) set(rule Rule) {
	rs.rules[rule.Name()] = rule
	for _, event := range rule.Handles() {
		byName, ok := rs.eventMap[event]
		if !ok {
			byName = make(map[string]Rule)
			rs.eventMap[event] = byName
		}
		byName[rule.Name()] = rule
	}
}

func (rs *ruleSet) names() []string {
	out := make([]string, 0, len(rs.rules))
	for name := range rs.rules {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// dispatch runs every rule registered for event. Rules run in an
// unspecified order; the first non-nil, non-ErrEventHandled error is kept
// and returned after every matching rule has run, matching the graph
// package's "collect all errors' rule but simplified to first-wins since
// pangraph events are not transactional.
func (rs *ruleSet) dispatch(g *Graph, event int, payload ...interface{}) error {
	handled := false
	var firstErr error

	for _, rule := range rs.eventMap[event] {
		if err := rule.Handle(g, event, payload...); err != nil {
			if err == ErrEventHandled {
				handled = true
			} else if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return firstErr
	}
	if handled {
		return ErrEventHandled
	}
	return nil
}
