package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wavelength/internal/config"
	"wavelength/internal/dispatch"
	"wavelength/internal/store"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	store      *store.MemoryStore
	dispatcher *dispatch.Dispatcher
	config     *config.ServerConfig
	sessions   *sessions
	log        zerolog.Logger
	started    time.Time
}

// New creates a new handler
func New(st *store.MemoryStore, d *dispatch.Dispatcher, cfg *config.ServerConfig, log zerolog.Logger) *Handler {
	return &Handler{
		store:      st,
		dispatcher: d,
		config:     cfg,
		sessions:   newSessions(),
		log:        log,
		started:    time.Now(),
	}
}

// newConnectionID generates a unique connection ID
func newConnectionID() string {
	return uuid.NewString()
}

// getBaseURL constructs the base URL from the request
func getBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
