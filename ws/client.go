package ws

import (
	"encoding/json"
	"sync"

	"caseshare_backend/internal/logger"

	"github.com/gorilla/websocket"
)

const sendBufferSize = 256

// Client is one live websocket connection, bound to the room of the
// user who opened it.
type Client struct {
	room string
	conn *websocket.Conn
	send chan Event

	mu     sync.Mutex
	closed bool

	hub    *Hub
	router *Router
}

func newClient(room string, conn *websocket.Conn, hub *Hub, router *Router) *Client {
	return &Client{
		room:   room,
		conn:   conn,
		send:   make(chan Event, sendBufferSize),
		hub:    hub,
		router: router,
	}
}

// Emit queues an event for this connection only. Returns false when the
// client is already torn down or the buffer is full and the event was
// dropped. Safe to call after the hub has removed the client.
func (c *Client) Emit(event Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}

// close marks the client torn down and closes the send channel so
// writePump drains and exits. Called only by the hub while it holds the
// registry lock; idempotent.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// readPump handles inbound frames to completion, one at a time, until
// the connection closes.
func (c *Client) readPump() {
	defer func() {
		// Best effort; queued so writePump stays the only writer and
		// drops silently when the teardown already happened.
		c.Emit(Event{Event: EventDisconnect})
		c.hub.Unregister(c)
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read error", "room", c.room, "error", err.Error())
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.Emit(errorEvent("invalid request"))
			continue
		}

		c.router.Handle(msg, c.Emit)
	}
}

// writePump is the connection's only writer. It drains queued events
// until the hub closes the send channel, then closes the connection,
// which also terminates a readPump still blocked on the socket.
func (c *Client) writePump() {
	defer c.conn.Close()
	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			logger.Warn("websocket write error", "room", c.room, "error", err.Error())
			return
		}
	}
}
