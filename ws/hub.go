package ws

import (
	"sync"

	"caseshare_backend/internal/logger"
)

// Hub is the process-wide registry of live connections, grouped into
// rooms keyed by owner identifier. It is created at server start and
// injected wherever room delivery is needed; it implements
// services.Emitter. A single process is assumed: there is no cross-node
// fan-out.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes connection lifecycle events. Started once, at app setup.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.add(client)
		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[client.room]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[client.room] = room
	}
	room[client] = struct{}{}
	logger.Debug("client joined room", "room", client.room, "size", len(room))
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[client.room]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	delete(room, client)
	client.close()
	if len(room) == 0 {
		delete(h.rooms, client.room)
	}
	logger.Debug("client left room", "room", client.room, "size", len(room))
}

// Emit delivers an event to every live connection in the room.
// Best-effort at-most-once: clients whose send buffer is full are
// dropped rather than blocking the caller.
func (h *Hub) Emit(event string, payload any, room string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		select {
		case client.send <- Event{Event: event, Data: payload}:
		default:
			logger.Warn("dropping slow client", "room", room)
			go h.Unregister(client)
		}
	}
}

// IsConnected reports whether the room has at least one live connection.
func (h *Hub) IsConnected(room string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room]) > 0
}

// ClientCount returns the total number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, room := range h.rooms {
		count += len(room)
	}
	return count
}
