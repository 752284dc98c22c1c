package game

// Direction is the opposing team's vote on which side of the dial the target lies
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection validates a vote coming off the wire
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionLeft, DirectionRight:
		return Direction(s), nil
	default:
		return DirectionNone, ErrInvalidDirection
	}
}

// Dial bounds and the position every round starts from
const (
	DialMin    = 0.0
	DialMax    = 100.0
	DialCenter = 50.0
)

// ClampDial pins a position to the dial's range
func ClampDial(pos float64) float64 {
	return max(DialMin, min(DialMax, pos))
}

// PointsAwarded holds one round's points for each side
type PointsAwarded struct {
	ActiveTeam   int `json:"activeTeam"`
	OpposingTeam int `json:"opposingTeam"`
}

// Round is the public state of a round in progress. The target is kept on
// the Room, never here.
type Round struct {
	Number         int
	ActiveTeam     Team
	Card           SpectrumCard
	Clue1          string
	Clue2          string
	DialPosition   float64
	LeftRightGuess Direction
	Points         PointsAwarded
	Zone           Zone
}

func newRound(number int, active Team, card SpectrumCard) *Round {
	return &Round{
		Number:       number,
		ActiveTeam:   active,
		Card:         card,
		DialPosition: DialCenter,
	}
}

// OpposingTeam returns the team voting left/right this round
func (r *Round) OpposingTeam() Team {
	return r.ActiveTeam.Opponent()
}
