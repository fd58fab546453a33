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
Package live implements a read-only WebSocket subscription feed over graph
mutator events, grounded on the teacher's own GraphQL subscription endpoint
and its ecal.WebsocketConnection wrapper.
*/
package live

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/krotik/common/datautil"

	"github.com/krotik/pangraph/pangraph"
)

var upgrader = websocket.Upgrader{
	Subprotocols:    []string{"pangraph-events"},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// connBufferSize bounds how many undelivered events a single subscriber
// may queue before Handle starts dropping its messages rather than piling
// up goroutines behind a slow socket.
const connBufferSize = 64

/*
conn wraps one subscriber's socket. Websocket connections support one
concurrent reader and one concurrent writer, so all writes serialize
through wmu. Outgoing events are queued on outbox and drained by a single
writeLoop goroutine per connection; a full outbox means the subscriber is
falling behind and the event is dropped instead of queued or blocked on.
*/
type conn struct {
	id  string
	ws  *websocket.Conn
	wmu sync.Mutex

	outbox    chan interface{}
	done      chan struct{}
	closeOnce sync.Once
}

func newConn(id string, ws *websocket.Conn) *conn {
	return &conn{
		id:     id,
		ws:     ws,
		outbox: make(chan interface{}, connBufferSize),
		done:   make(chan struct{}),
	}
}

// enqueue offers msg to the connection's outbox, returning false without
// blocking if it is already full.
func (c *conn) enqueue(msg interface{}) bool {
	select {
	case c.outbox <- msg:
		return true
	default:
		return false
	}
}

// writeLoop drains outbox onto the socket until the connection is stopped
// or a write fails, in which case it removes itself from h.
func (c *conn) writeLoop(h *Hub) {
	for {
		select {
		case msg := <-c.outbox:
			if err := c.send(msg); err != nil {
				h.remove(c.id)
				c.stop()
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *conn) stop() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *conn) send(msg interface{}) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

func (c *conn) close(reason string) {
	c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason),
		time.Now().Add(10*time.Second))
	c.ws.Close()
}

/*
Hub fans mutator events out to subscribed WebSocket clients. It implements
pangraph.Rule directly: registering a Hub as a rule on a Graph is
sufficient to start streaming. Sends never block the mutator that
triggered them — a subscriber whose outbox is full misses the event but
stays subscribed; it is removed only when a socket write fails or it
disconnects.
*/
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*conn

	// replay is a bounded ring buffer of the most recent events, handed
	// to a new subscriber on connect so it can catch up without missing
	// the events that raced its own handshake.
	replay *datautil.RingBuffer
}

/*
Event is the JSON envelope sent to every subscriber.
*/
type Event struct {
	Type    int         `json:"type"`
	Payload interface{} `json:"payload"`
}

/*
NewHub returns a Hub that replays up to replaySize past events to newly
connected subscribers.
*/
func NewHub(replaySize int) *Hub {
	return &Hub{
		subscribers: make(map[string]*conn),
		replay:      datautil.NewRingBuffer(replaySize),
	}
}

/*
Name identifies this rule instance.
*/
func (h *Hub) Name() string { return "live.hub" }

/*
Handles reports that the hub listens for every mutator event.
*/
func (h *Hub) Handles() []int {
	return []int{
		pangraph.EventNodeCreated, pangraph.EventNodeDestroyed,
		pangraph.EventEdgeCreated, pangraph.EventEdgeDestroyed,
		pangraph.EventPathCreated, pangraph.EventPathDestroyed,
		pangraph.EventStepAppended, pangraph.EventNodeDivided,
		pangraph.EventOrientationApplied,
	}
}

/*
Handle broadcasts event to every current subscriber and appends it to the
replay buffer. Never returns an error: a slow or dead subscriber is the
hub's problem, not the mutator's. Delivery to each subscriber is a
non-blocking enqueue onto that connection's own bounded outbox; a
subscriber whose outbox is already full has this event dropped rather
than queued, so one stuck client never grows unbounded state or stalls
the mutator that triggered the event.
*/
func (h *Hub) Handle(g *pangraph.Graph, event int, payload ...interface{}) error {
	var p interface{}
	if len(payload) > 0 {
		p = payload[0]
	}
	msg := Event{Type: event, Payload: p}

	h.mu.Lock()
	h.replay.Add(msg)
	targets := make([]*conn, 0, len(h.subscribers))
	for _, c := range h.subscribers {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		c.enqueue(msg)
	}
	return nil
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	delete(h.subscribers, id)
	h.mu.Unlock()
}

/*
ServeHTTP upgrades the request to a WebSocket and registers the connection
as a subscriber until it disconnects. Incoming messages are read and
discarded; the protocol is server-to-client only.
*/
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	id := r.RemoteAddr + "-" + time.Now().String()
	c := newConn(id, ws)

	h.mu.Lock()
	h.subscribers[id] = c
	for _, past := range h.replay.Slice() {
		c.enqueue(past)
	}
	h.mu.Unlock()

	go c.writeLoop(h)

	defer func() {
		h.remove(id)
		c.stop()
		c.close("bye")
	}()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

/*
SubscriberCount reports how many clients are currently connected.
*/
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
