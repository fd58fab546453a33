/*
 * PanGraph
 *
 * Copyright 2026 The PanGraph Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package live

import (
	"testing"

	"github.com/krotik/pangraph/pangraph"
)

func TestConnEnqueueDropsWhenFull(t *testing.T) {
	c := &conn{outbox: make(chan interface{}, 2), done: make(chan struct{})}

	if !c.enqueue("a") || !c.enqueue("b") {
		t.Fatal("enqueue should succeed while the outbox has room")
	}
	if c.enqueue("c") {
		t.Fatal("enqueue should report false once the outbox is full")
	}
	if len(c.outbox) != 2 {
		t.Fatalf("outbox len = %d, want 2 (dropped message must not be queued)", len(c.outbox))
	}
}

func TestHubHandleDropsForSlowSubscriber(t *testing.T) {
	h := NewHub(4)
	c := &conn{id: "stuck", outbox: make(chan interface{}, 2), done: make(chan struct{})}

	h.mu.Lock()
	h.subscribers[c.id] = c
	h.mu.Unlock()

	// Nothing drains c.outbox here, standing in for a subscriber whose
	// socket write would otherwise block forever.
	for i := 0; i < 5; i++ {
		if err := h.Handle(nil, pangraph.EventNodeCreated, i); err != nil {
			t.Fatalf("Handle returned an error: %v", err)
		}
	}

	if len(c.outbox) != 2 {
		t.Fatalf("outbox len = %d, want 2 (excess events must be dropped, not queued)", len(c.outbox))
	}
	if h.SubscriberCount() != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1 (a full outbox must not itself disconnect the subscriber)", h.SubscriberCount())
	}
}

func TestHubHandleBroadcastsToSubscriberWithRoom(t *testing.T) {
	h := NewHub(4)
	c := &conn{id: "fast", outbox: make(chan interface{}, 8), done: make(chan struct{})}

	h.mu.Lock()
	h.subscribers[c.id] = c
	h.mu.Unlock()

	if err := h.Handle(nil, pangraph.EventNodeCreated, uint64(7)); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-c.outbox:
		ev, ok := msg.(Event)
		if !ok || ev.Type != pangraph.EventNodeCreated {
			t.Fatalf("queued message = %#v, want an Event with type EventNodeCreated", msg)
		}
	default:
		t.Fatal("expected the event to be queued for a subscriber with room")
	}
}
