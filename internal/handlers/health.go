package handlers

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      string    `json:"uptime"`
	Rooms       int       `json:"rooms"`
	Players     int       `json:"players"`
	Connections int       `json:"connections"`
}

// Health reports liveness along with room and connection counts
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rooms, players := h.store.Stats()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(h.started).Round(time.Second).String(),
		Rooms:       rooms,
		Players:     players,
		Connections: h.dispatcher.ConnectionCount(),
	})
}

// Live answers the liveness probe
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Ready answers the readiness probe. The server keeps no external
// dependencies, so it is ready once it can respond.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
