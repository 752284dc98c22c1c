package dispatch

import (
	"sync"

	"github.com/rs/zerolog"
)

// Conn is a live client connection. Send must not block; a connection that
// cannot keep up returns an error and is closed by the hub.
type Conn interface {
	ID() string
	Send(Message) error
	Close()
}

// Hub tracks live connections by id
type Hub struct {
	mu    sync.RWMutex
	conns map[string]Conn
	log   zerolog.Logger
}

// NewHub creates an empty hub
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns: make(map[string]Conn),
		log:   log,
	}
}

// Register adds a connection, replacing any previous one with the same id
func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[c.ID()] = c
}

// Unregister removes a connection and reports whether it was known
func (h *Hub) Unregister(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[id]; !ok {
		return false
	}
	delete(h.conns, id)
	return true
}

// Has reports whether a connection is registered
func (h *Hub) Has(id string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.conns[id]
	return ok
}

// Count returns the number of registered connections
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}

// Send delivers a message to one connection. Slow connections are closed
// and their read loop takes care of the disconnect.
func (h *Hub) Send(id string, msg Message) bool {
	h.mu.RLock()
	c, ok := h.conns[id]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	if err := c.Send(msg); err != nil {
		h.log.Warn().Err(err).Str("conn", id).Str("type", string(msg.Type)).Msg("dropping connection")
		c.Close()
		return false
	}
	return true
}

// Broadcast delivers a message to every listed connection
func (h *Hub) Broadcast(ids []string, msg Message) {
	for _, id := range ids {
		h.Send(id, msg)
	}
}
