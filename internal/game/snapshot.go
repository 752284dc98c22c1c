package game

// Scores holds each team's running total
type Scores struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (s *Scores) add(t Team, points int) {
	switch t {
	case TeamA:
		s.A += points
	case TeamB:
		s.B += points
	}
}

// PlayerView is a player as every member of the room sees it
type PlayerView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Team      *Team  `json:"team"`
	IsPsychic bool   `json:"isPsychic"`
	IsHost    bool   `json:"isHost"`
}

// RoundView is a round as every member of the room sees it
type RoundView struct {
	RoundNumber    int           `json:"roundNumber"`
	ActiveTeam     Team          `json:"activeTeam"`
	Card           SpectrumCard  `json:"card"`
	Clue1          *string       `json:"clue1"`
	Clue2          *string       `json:"clue2"`
	DialPosition   float64       `json:"dialPosition"`
	LeftRightGuess *Direction    `json:"leftRightGuess"`
	PointsAwarded  PointsAwarded `json:"pointsAwarded"`
	Zone           Zone          `json:"zone,omitempty"`
}

// PublicState is the snapshot broadcast to every member of a room.
// RevealedTargetPosition is only set while the room is scoring.
type PublicState struct {
	RoomCode               string       `json:"roomCode"`
	Phase                  Phase        `json:"phase"`
	Players                []PlayerView `json:"players"`
	Scores                 Scores       `json:"scores"`
	Round                  *RoundView   `json:"round"`
	RevealedTargetPosition *float64     `json:"revealedTargetPosition,omitempty"`
}

func viewPlayer(p *Player) PlayerView {
	v := PlayerView{
		ID:        p.ID,
		Name:      p.Name,
		IsPsychic: p.IsPsychic,
		IsHost:    p.IsHost,
	}
	if p.Team != TeamNone {
		team := p.Team
		v.Team = &team
	}
	return v
}

func viewRound(r *Round) *RoundView {
	v := &RoundView{
		RoundNumber:   r.Number,
		ActiveTeam:    r.ActiveTeam,
		Card:          r.Card,
		DialPosition:  r.DialPosition,
		PointsAwarded: r.Points,
		Zone:          r.Zone,
	}
	if r.Clue1 != "" {
		clue := r.Clue1
		v.Clue1 = &clue
	}
	if r.Clue2 != "" {
		clue := r.Clue2
		v.Clue2 = &clue
	}
	if r.LeftRightGuess != DirectionNone {
		guess := r.LeftRightGuess
		v.LeftRightGuess = &guess
	}
	return v
}
