package handlers

import (
	"sync"

	"github.com/google/uuid"
)

// sessions maps the secret token handed to each SSE stream onto its
// connection. Connection ids are public in room state, tokens never are.
type sessions struct {
	mu      sync.RWMutex
	byToken map[string]string
}

func newSessions() *sessions {
	return &sessions{byToken: make(map[string]string)}
}

// open issues a token for a stream's connection
func (s *sessions) open(connID string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = connID
	return token
}

func (s *sessions) close(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
}

// lookup returns the connection a token belongs to
func (s *sessions) lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	connID, ok := s.byToken[token]
	return connID, ok
}
