package game

import "testing"

// stubSource replays fixed target fractions and never reorders the deck
type stubSource struct {
	values []float64
	next   int
}

func (s *stubSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0.5
	}
	v := s.values[min(s.next, len(s.values)-1)]
	s.next++
	return v
}

func (s *stubSource) Shuffle(n int, swap func(i, j int)) {}

// createTestCardService creates a CardService with a handful of cards
func createTestCardService(t *testing.T) *CardService {
	t.Helper()
	svc, err := NewCardService([]byte(`
name: test
cards:
  - { id: t1, left: "Cold", right: "Hot" }
  - { id: t2, left: "Quiet", right: "Loud" }
  - { id: t3, left: "Slow", right: "Fast" }
`))
	if err != nil {
		t.Fatalf("failed to build test card service: %v", err)
	}
	return svc
}

// newTestRoom creates a room whose targets are the given fractions of the dial
func newTestRoom(t *testing.T, targets ...float64) *Room {
	t.Helper()
	return NewRoom("TEST", createTestCardService(t), WithSource(&stubSource{values: targets}))
}

// seat adds players alternating teams: even indexes on A, odd on B.
// The first player is the host.
func seat(t *testing.T, room *Room, ids ...string) {
	t.Helper()
	for i, id := range ids {
		if _, err := room.AddPlayer(id, "Player "+id, i == 0); err != nil {
			t.Fatalf("failed to add %s: %v", id, err)
		}
		team := TeamA
		if i%2 == 1 {
			team = TeamB
		}
		if err := room.AssignTeam(id, team); err != nil {
			t.Fatalf("failed to assign %s: %v", id, err)
		}
	}
}

func psychicOf(room *Room) string {
	for _, p := range room.Snapshot().Players {
		if p.IsPsychic {
			return p.ID
		}
	}
	return ""
}
