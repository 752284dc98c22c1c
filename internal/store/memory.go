package store

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"sync"

	"wavelength/internal/game"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrAlreadyInRoom      = errors.New("connection is already in a room")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique room code")
)

// CodeAlphabet leaves out I and O, which read like 1 and 0
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// CodeLength is the number of characters in a room code
const CodeLength = 4

const maxCodeAttempts = 100

// MemoryStore is the process-wide registry of live rooms. It owns the
// code-to-room index and the connection-to-code index.
type MemoryStore struct {
	mu          sync.RWMutex
	rooms       map[string]*game.Room
	connections map[string]string

	cards        *game.CardService
	maxPlayers   int
	newSource    func() game.Source
	generateCode func() string
}

// Option customizes a MemoryStore
type Option func(*MemoryStore)

// WithMaxPlayers caps every room's roster
func WithMaxPlayers(n int) Option {
	return func(s *MemoryStore) {
		s.maxPlayers = n
	}
}

// WithSourceFactory sets how each new room gets its randomness
func WithSourceFactory(f func() game.Source) Option {
	return func(s *MemoryStore) {
		s.newSource = f
	}
}

// WithCodeGenerator replaces the random room code generator
func WithCodeGenerator(f func() string) Option {
	return func(s *MemoryStore) {
		s.generateCode = f
	}
}

// NewMemoryStore creates a new in-memory registry
func NewMemoryStore(cards *game.CardService, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		rooms:        make(map[string]*game.Room),
		connections:  make(map[string]string),
		cards:        cards,
		newSource:    game.NewSource,
		generateCode: generateRoomCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRoom opens a room under a fresh code with the creator as host
func (s *MemoryStore) CreateRoom(connID, name string) (*game.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.connections[connID]; ok {
		return nil, ErrAlreadyInRoom
	}

	code := ""
	for i := 0; i < maxCodeAttempts; i++ {
		candidate := s.generateCode()
		if _, exists := s.rooms[candidate]; !exists {
			code = candidate
			break
		}
	}
	if code == "" {
		return nil, ErrCodeSpaceExhausted
	}

	room := game.NewRoom(code, s.cards,
		game.WithSource(s.newSource()),
		game.WithMaxPlayers(s.maxPlayers),
	)
	if _, err := room.AddPlayer(connID, name, true); err != nil {
		return nil, err
	}

	s.rooms[code] = room
	s.connections[connID] = code
	return room, nil
}

// JoinRoom seats a connection in an existing room. Codes match case-insensitively.
func (s *MemoryStore) JoinRoom(code, connID, name string) (*game.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.connections[connID]; ok {
		return nil, ErrAlreadyInRoom
	}

	code = NormalizeCode(code)
	room, exists := s.rooms[code]
	if !exists {
		return nil, ErrRoomNotFound
	}
	if _, err := room.AddPlayer(connID, name, false); err != nil {
		return nil, err
	}

	s.connections[connID] = code
	return room, nil
}

// GetRoom retrieves a room by code
func (s *MemoryStore) GetRoom(code string) (*game.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[NormalizeCode(code)]
	return room, exists
}

// GetRoomForConnection retrieves the room a connection is seated in
func (s *MemoryStore) GetRoomForConnection(connID string) (*game.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code, ok := s.connections[connID]
	if !ok {
		return nil, false
	}
	room, exists := s.rooms[code]
	return room, exists
}

// RemoveConnection unseats a connection and deletes its room once empty.
// It returns the room that still needs an update, or nil if the room is
// gone, along with the code the connection was in ("" if it was in none).
func (s *MemoryStore) RemoveConnection(connID string) (*game.Room, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.connections[connID]
	if !ok {
		return nil, ""
	}
	delete(s.connections, connID)

	room, exists := s.rooms[code]
	if !exists {
		return nil, code
	}
	room.RemovePlayer(connID)
	if room.PlayerCount() == 0 {
		delete(s.rooms, code)
		return nil, code
	}
	return room, code
}

// Stats reports how many rooms and seated connections are live
func (s *MemoryStore) Stats() (rooms, connections int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rooms), len(s.connections)
}

// NormalizeCode upper-cases and trims a user-typed room code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// generateRoomCode generates a 4-letter code from CodeAlphabet
func generateRoomCode() string {
	b := make([]byte, CodeLength)
	limit := big.NewInt(int64(len(CodeAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		b[i] = CodeAlphabet[n.Int64()]
	}
	return string(b)
}
