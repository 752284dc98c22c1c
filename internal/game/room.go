package game

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

// Phase is the current step of a room's round lifecycle
type Phase string

const (
	PhaseLobby      Phase = "LOBBY"
	PhaseClueGiving Phase = "CLUE_GIVING"
	PhaseGuessing   Phase = "GUESSING"
	PhaseLeftRight  Phase = "LEFT_RIGHT"
	PhaseScoring    Phase = "SCORING"
	PhaseGameOver   Phase = "GAME_OVER"
)

// WinScore ends the game once either team reaches it
const WinScore = 10

// Room is the authoritative state of one game instance
type Room struct {
	Code      string
	CreatedAt time.Time

	mu          sync.RWMutex
	phase       Phase
	players     []*Player // join order
	maxPlayers  int
	scores      Scores
	round       *Round
	target      float64 // meaningful only while round != nil
	deck        *Deck
	roundNumber int
	activeTeam  Team
	rotation    map[Team]int

	cards *CardService
	src   Source
}

// RoomOption customizes a new room
type RoomOption func(*Room)

// WithSource injects the randomness used for shuffles and target rolls
func WithSource(src Source) RoomOption {
	return func(r *Room) {
		r.src = src
	}
}

// WithMaxPlayers caps the roster size. Zero means unlimited.
func WithMaxPlayers(n int) RoomOption {
	return func(r *Room) {
		r.maxPlayers = n
	}
}

// NewRoom creates an empty room in the lobby
func NewRoom(code string, cards *CardService, opts ...RoomOption) *Room {
	r := &Room{
		Code:       code,
		CreatedAt:  time.Now(),
		phase:      PhaseLobby,
		activeTeam: TeamA,
		rotation:   map[Team]int{TeamA: 0, TeamB: 0},
		cards:      cards,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.src == nil {
		r.src = NewSource()
	}
	return r
}

// AddPlayer seats a new player with no team
func (r *Room) AddPlayer(id, name string, isHost bool) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.playerLocked(id) != nil {
		return nil, ErrDuplicatePlayer
	}
	if r.maxPlayers > 0 && len(r.players) >= r.maxPlayers {
		return nil, ErrRoomFull
	}

	p := NewPlayer(id, name, isHost)
	r.players = append(r.players, p)
	return p, nil
}

// RemovePlayer removes a player from the room
func (r *Room) RemovePlayer(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return true
		}
	}
	return false
}

// GetPlayer returns a copy of the player, or nil
func (r *Room) GetPlayer(id string) *Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.playerLocked(id)
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// PlayerIDs returns member ids in join order
func (r *Room) PlayerIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.players))
	for i, p := range r.players {
		ids[i] = p.ID
	}
	return ids
}

// PlayerCount returns the number of seated players
func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.players)
}

// Phase returns the current phase
func (r *Room) Phase() Phase {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.phase
}

// Scores returns both team totals
func (r *Room) Scores() Scores {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.scores
}

// AssignTeam moves a player to team A or B. The current psychic is pinned
// to their team while a round is in play.
func (r *Room) AssignTeam(id string, team Team) error {
	if team != TeamA && team != TeamB {
		return ErrInvalidTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(id)
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.IsPsychic && r.round != nil && p.Team != team {
		return ErrPsychicLocked
	}
	p.Team = team
	return nil
}

// CanStart reports whether both teams have at least one player
func (r *Room) CanStart() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.canStartLocked()
}

func (r *Room) canStartLocked() bool {
	return len(r.teamLocked(TeamA)) >= 1 && len(r.teamLocked(TeamB)) >= 1 && len(r.players) >= 2
}

// StartGame begins a fresh game from the lobby or after a game over.
// Only the host may start, and both teams need a player.
func (r *Room) StartGame(callerID string, custom []SpectrumCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(callerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.IsHost {
		return ErrNotHost
	}
	if r.phase != PhaseLobby && r.phase != PhaseGameOver {
		return wrongPhase(r.phase, PhaseLobby, PhaseGameOver)
	}
	if !r.canStartLocked() {
		return ErrNotEnoughPlayers
	}
	if r.cards == nil {
		return ErrNoCards
	}

	pool, err := r.cards.Pool(custom)
	if err != nil {
		return err
	}
	deck, err := NewDeck(pool, r.src)
	if err != nil {
		return err
	}

	r.deck = deck
	r.scores = Scores{}
	r.roundNumber = 0
	r.activeTeam = TeamA
	r.rotation = map[Team]int{TeamA: 0, TeamB: 0}
	r.phase = PhaseClueGiving
	r.beginRoundLocked()
	return nil
}

// SubmitClues stores the psychic's two clues and opens guessing
func (r *Room) SubmitClues(callerID, clue1, clue2 string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseClueGiving || r.round == nil {
		return wrongPhase(r.phase, PhaseClueGiving)
	}
	p := r.playerLocked(callerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.IsPsychic {
		return ErrNotPsychic
	}

	clue1, clue2 = strings.TrimSpace(clue1), strings.TrimSpace(clue2)
	if clue1 == "" || clue2 == "" {
		return ErrEmptyClue
	}

	r.round.Clue1 = clue1
	r.round.Clue2 = clue2
	r.phase = PhaseGuessing
	return nil
}

// UpdateDial moves the dial for a guessing, non-psychic member of the
// active team. Anything else is ignored; the return value reports whether
// the dial was updated.
func (r *Room) UpdateDial(callerID string, pos float64) bool {
	if math.IsNaN(pos) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseGuessing || r.round == nil {
		return false
	}
	p := r.playerLocked(callerID)
	if p == nil || !p.OnTeam(r.round.ActiveTeam) || p.IsPsychic {
		return false
	}

	r.round.DialPosition = ClampDial(pos)
	return true
}

// LockGuess commits the dial. Rooms of two or fewer players have no one
// to vote left/right, so they go straight to scoring.
func (r *Room) LockGuess(callerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseGuessing || r.round == nil {
		return wrongPhase(r.phase, PhaseGuessing)
	}
	p := r.playerLocked(callerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.OnTeam(r.round.ActiveTeam) {
		return ErrNotActiveTeam
	}

	if len(r.players) <= 2 {
		r.resolveScoringLocked()
		return nil
	}
	r.phase = PhaseLeftRight
	return nil
}

// LockLeftRight records the opposing team's vote and scores the round
func (r *Room) LockLeftRight(callerID string, guess Direction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseLeftRight || r.round == nil {
		return wrongPhase(r.phase, PhaseLeftRight)
	}
	if guess != DirectionLeft && guess != DirectionRight {
		return ErrInvalidDirection
	}
	p := r.playerLocked(callerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.OnTeam(r.round.OpposingTeam()) {
		return ErrNotOpposingTeam
	}

	r.round.LeftRightGuess = guess
	r.resolveScoringLocked()
	return nil
}

// NextRound leaves scoring. The game ends once either team has WinScore;
// otherwise the turn passes to the other team.
func (r *Room) NextRound(callerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseScoring || r.round == nil {
		return wrongPhase(r.phase, PhaseScoring)
	}
	if r.playerLocked(callerID) == nil {
		return ErrPlayerNotFound
	}

	if r.scores.A >= WinScore || r.scores.B >= WinScore {
		r.phase = PhaseGameOver
		r.round = nil
		r.target = 0
		r.clearPsychicLocked()
		return nil
	}

	r.rotation[r.round.ActiveTeam]++
	r.activeTeam = r.activeTeam.Opponent()
	r.phase = PhaseClueGiving
	r.beginRoundLocked()
	return nil
}

// PsychicTarget returns the hidden target and who may see it.
// ok is false when no round is running or the active team has no psychic.
func (r *Room) PsychicTarget() (target float64, psychicID string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.round == nil {
		return 0, "", false
	}
	for _, p := range r.players {
		if p.IsPsychic {
			return r.target, p.ID, true
		}
	}
	return 0, "", false
}

// Snapshot returns the public state. The target only appears while scoring.
func (r *Room) Snapshot() PublicState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := PublicState{
		RoomCode: r.Code,
		Phase:    r.phase,
		Players:  make([]PlayerView, len(r.players)),
		Scores:   r.scores,
	}
	for i, p := range r.players {
		state.Players[i] = viewPlayer(p)
	}
	if r.round != nil {
		state.Round = viewRound(r.round)
		if r.phase == PhaseScoring {
			target := r.target
			state.RevealedTargetPosition = &target
		}
	}
	return state
}

func (r *Room) beginRoundLocked() {
	r.roundNumber++
	card := r.deck.Draw()
	r.target = r.src.Float64() * DialMax

	r.clearPsychicLocked()
	if psychic := r.pickPsychicLocked(r.activeTeam); psychic != nil {
		psychic.IsPsychic = true
	}

	r.round = newRound(r.roundNumber, r.activeTeam, card)
}

func (r *Room) resolveScoringLocked() {
	points, zone := ComputeGuessPoints(r.target, r.round.DialPosition)
	bonus := ComputeBonusPoint(r.target, r.round.DialPosition, r.round.LeftRightGuess, points)

	r.round.Points = PointsAwarded{ActiveTeam: points, OpposingTeam: bonus}
	r.round.Zone = zone
	r.scores.add(r.round.ActiveTeam, points)
	r.scores.add(r.round.OpposingTeam(), bonus)
	r.phase = PhaseScoring
}

// pickPsychicLocked rotates through the team in join order
func (r *Room) pickPsychicLocked(team Team) *Player {
	members := r.teamLocked(team)
	if len(members) == 0 {
		return nil
	}
	return members[r.rotation[team]%len(members)]
}

func (r *Room) clearPsychicLocked() {
	for _, p := range r.players {
		p.IsPsychic = false
	}
}

func (r *Room) teamLocked(team Team) []*Player {
	var members []*Player
	for _, p := range r.players {
		if p.OnTeam(team) {
			members = append(members, p)
		}
	}
	return members
}

func (r *Room) playerLocked(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func wrongPhase(got Phase, want ...Phase) error {
	names := make([]string, len(want))
	for i, w := range want {
		names[i] = string(w)
	}
	return fmt.Errorf("%w: room is in %s, expected %s", ErrWrongPhase, got, strings.Join(names, " or "))
}
