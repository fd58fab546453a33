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
Package ecalbridge forwards graph mutator events into an embedded ECAL rule
engine, grounded on the teacher's own ecal.EventBridge. It is opt-in: the
graph core never imports this package, so a build that never registers an
EventBridge pays nothing for ECAL.
*/
package ecalbridge

import (
	"fmt"
	"strings"

	"github.com/krotik/ecal/engine"
	"github.com/krotik/ecal/util"

	"github.com/krotik/pangraph/pangraph"
)

/*
EventMapping maps pangraph event constants to ECAL event kinds, dot
separated the way engine.NewEvent expects.
*/
var EventMapping = map[int]string{
	pangraph.EventNodeCreated:        "graph.node.created",
	pangraph.EventNodeDestroyed:      "graph.node.destroyed",
	pangraph.EventEdgeCreated:        "graph.edge.created",
	pangraph.EventEdgeDestroyed:      "graph.edge.destroyed",
	pangraph.EventPathCreated:        "graph.path.created",
	pangraph.EventPathDestroyed:      "graph.path.destroyed",
	pangraph.EventStepAppended:       "graph.step.appended",
	pangraph.EventNodeDivided:        "graph.node.divided",
	pangraph.EventOrientationApplied: "graph.node.reoriented",
}

/*
EventBridge is a pangraph.Rule that forwards every mutator event into an
ECAL engine.Processor as an event, letting operators attach .ecal scripts
to graph mutations without recompiling.
*/
type EventBridge struct {
	Processor engine.Processor
	Logger    util.Logger
}

/*
Name identifies this rule.
*/
func (eb *EventBridge) Name() string { return "ecalbridge.eventbridge" }

/*
Handles reports every mutator event the bridge understands.
*/
func (eb *EventBridge) Handles() []int {
	handled := make([]int, 0, len(EventMapping))
	for event := range EventMapping {
		handled = append(handled, event)
	}
	return handled
}

/*
Handle injects event into the ECAL engine, first checking IsTriggering so
that events with no attached script pay only the cost of that check.
*/
func (eb *EventBridge) Handle(g *pangraph.Graph, event int, payload ...interface{}) error {
	name, ok := EventMapping[event]
	if !ok {
		return nil
	}

	eventName := fmt.Sprintf("PanGraph: %v", name)
	eventKind := strings.Split(name, ".")

	triggerCheck := engine.NewEvent(eventName, eventKind, nil)
	if !eb.Processor.IsTriggering(triggerCheck) {
		return nil
	}

	state := map[interface{}]interface{}{}
	if len(payload) > 0 {
		state["payload"] = payload[0]
	}

	ecalEvent := engine.NewEvent(eventName, eventKind, state)

	m, err := eb.Processor.AddEventAndWait(ecalEvent, nil)
	if err != nil {
		return err
	}

	if root, ok := m.(*engine.RootMonitor); ok {
		if errs := root.AllErrors(); len(errs) > 0 {
			var handled bool
			var messages []string
			for _, e := range errs {
				for _, se := range e.ErrorMap {
					if re, ok := se.(*util.RuntimeErrorWithDetail); ok && re.Detail == pangraph.ErrEventHandled.Error() {
						handled = true
						continue
					}
					messages = append(messages, se.Error())
				}
			}
			if len(messages) > 0 {
				if eb.Logger != nil {
					eb.Logger.LogDebug("pangraph event ", name, " raised ecal errors: ", strings.Join(messages, "; "))
				}
				return fmt.Errorf("ecal errors handling %v: %v", name, strings.Join(messages, "; "))
			}
			if handled {
				return pangraph.ErrEventHandled
			}
		}
	}

	return nil
}
