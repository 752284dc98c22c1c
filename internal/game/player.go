package game

// Team identifies one of the two sides. The zero value means unassigned.
type Team string

const (
	TeamNone Team = ""
	TeamA    Team = "A"
	TeamB    Team = "B"
)

// ParseTeam validates a team name coming off the wire
func ParseTeam(s string) (Team, error) {
	switch Team(s) {
	case TeamA, TeamB:
		return Team(s), nil
	default:
		return TeamNone, ErrInvalidTeam
	}
}

// Opponent returns the other team
func (t Team) Opponent() Team {
	switch t {
	case TeamA:
		return TeamB
	case TeamB:
		return TeamA
	default:
		return TeamNone
	}
}

// Player represents a connection seated in a room
type Player struct {
	ID        string
	Name      string
	Team      Team
	IsPsychic bool
	IsHost    bool
}

// NewPlayer creates a new player
func NewPlayer(id, name string, isHost bool) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		IsHost: isHost,
	}
}

// OnTeam reports whether the player is seated on team t
func (p *Player) OnTeam(t Team) bool {
	return t != TeamNone && p.Team == t
}
