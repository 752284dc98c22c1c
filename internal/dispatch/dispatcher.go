package dispatch

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"wavelength/internal/game"
	"wavelength/internal/store"
)

// Limits bounds what a single command may carry
type Limits struct {
	MaxNameLength  int
	MaxClueLength  int
	MaxCustomCards int
	DialRate       float64 // updates per second per connection
	DialBurst      int
	CommandRate    float64 // every other command, per second per connection
	CommandBurst   int
}

// DefaultLimits returns the limits used when none are configured
func DefaultLimits() Limits {
	return Limits{
		MaxNameLength:  32,
		MaxClueLength:  80,
		MaxCustomCards: 100,
		DialRate:       30,
		DialBurst:      10,
		CommandRate:    5,
		CommandBurst:   20,
	}
}

// Dispatcher routes commands from connections to rooms and fans the
// resulting state back out. Commands are applied one at a time.
type Dispatcher struct {
	mu       sync.Mutex
	store    *store.MemoryStore
	hub      *Hub
	limits   Limits
	limiters map[string]*connLimiters
	log      zerolog.Logger
}

// connLimiters throttles one connection. Dial updates get their own
// bucket so dragging the dial cannot starve a lock or a vote.
type connLimiters struct {
	dial     *rate.Limiter
	commands *rate.Limiter
}

// New creates a dispatcher over the given registry
func New(st *store.MemoryStore, limits Limits, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		store:    st,
		hub:      NewHub(log),
		limits:   limits,
		limiters: make(map[string]*connLimiters),
		log:      log,
	}
}

// Connect registers a connection and tells it its id
func (d *Dispatcher) Connect(c Conn) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hub.Register(c)
	d.hub.Send(c.ID(), connectedMessage(c.ID()))
	d.log.Debug().Str("conn", c.ID()).Msg("connection opened")
}

// Disconnect unseats the connection and updates whoever is left in its room
func (d *Dispatcher) Disconnect(connID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hub.Unregister(connID)
	delete(d.limiters, connID)

	room, code := d.store.RemoveConnection(connID)
	switch {
	case code == "":
		d.log.Debug().Str("conn", connID).Msg("connection closed")
	case room == nil:
		d.log.Info().Str("conn", connID).Str("room", code).Msg("room deleted")
	default:
		d.log.Info().Str("conn", connID).Str("room", code).Msg("player left")
		d.broadcastState(room)
	}
}

// IsConnected reports whether the id belongs to a live connection
func (d *Dispatcher) IsConnected(connID string) bool {
	return d.hub.Has(connID)
}

// ConnectionCount returns the number of live connections
func (d *Dispatcher) ConnectionCount() int {
	return d.hub.Count()
}

// Handle applies one command for a connection. A rejected command is
// reported to the caller alone and returned. Dial updates never fail.
func (d *Dispatcher) Handle(connID string, cmd Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if cmd.Type != CmdUpdateDial && !d.limitersFor(connID).commands.Allow() {
		d.reject(connID, cmd.Type, ErrRateLimited)
		return ErrRateLimited
	}

	var err error
	switch cmd.Type {
	case CmdCreateRoom:
		err = d.createRoom(connID, cmd)
	case CmdJoinRoom:
		err = d.joinRoom(connID, cmd)
	case CmdAssignTeam:
		err = d.assignTeam(connID, cmd)
	case CmdStartGame:
		err = d.startGame(connID, cmd)
	case CmdSubmitClues:
		err = d.submitClues(connID, cmd)
	case CmdUpdateDial:
		d.updateDial(connID, cmd)
	case CmdLockGuess:
		err = d.withRoom(connID, func(room *game.Room) error {
			return room.LockGuess(connID)
		})
	case CmdLockLeftRight:
		err = d.lockLeftRight(connID, cmd)
	case CmdNextRound:
		err = d.nextRound(connID)
	default:
		err = ErrUnknownCommand
	}

	if err != nil {
		d.reject(connID, cmd.Type, err)
	}
	return err
}

// Reject reports an error that happened before a command could be handled,
// such as an undecodable frame
func (d *Dispatcher) Reject(connID string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reject(connID, "", err)
}

func (d *Dispatcher) reject(connID string, cmdType CommandType, err error) {
	kind := Classify(err)
	ev := d.log.Debug()
	if kind == KindInternal {
		ev = d.log.Error()
	}
	ev.Err(err).Str("conn", connID).Str("command", string(cmdType)).Str("kind", string(kind)).Msg("command rejected")
	d.hub.Send(connID, errorMessage(err))
}

func (d *Dispatcher) createRoom(connID string, cmd Command) error {
	name, err := d.validateName(cmd.Username)
	if err != nil {
		return err
	}

	room, err := d.store.CreateRoom(connID, name)
	if err != nil {
		return err
	}

	d.log.Info().Str("conn", connID).Str("room", room.Code).Msg("room created")
	d.hub.Send(connID, Message{
		Type:     MsgRoomCreated,
		RoomCode: room.Code,
		State:    snapshotOf(room),
	})
	return nil
}

func (d *Dispatcher) joinRoom(connID string, cmd Command) error {
	name, err := d.validateName(cmd.Username)
	if err != nil {
		return err
	}
	code := store.NormalizeCode(cmd.RoomCode)
	if code == "" {
		return ErrRoomCodeRequired
	}

	room, err := d.store.JoinRoom(code, connID, name)
	if err != nil {
		return err
	}

	d.log.Info().Str("conn", connID).Str("room", room.Code).Msg("player joined")
	state := room.Snapshot()
	d.hub.Send(connID, stateMessage(MsgRoomJoined, state))
	for _, id := range room.PlayerIDs() {
		if id != connID {
			d.hub.Send(id, stateMessage(MsgState, state))
		}
	}
	return nil
}

func (d *Dispatcher) assignTeam(connID string, cmd Command) error {
	team, err := game.ParseTeam(cmd.Team)
	if err != nil {
		return err
	}
	return d.withRoom(connID, func(room *game.Room) error {
		return room.AssignTeam(connID, team)
	})
}

func (d *Dispatcher) startGame(connID string, cmd Command) error {
	if len(cmd.CustomCards) > d.limits.MaxCustomCards {
		return ErrTooManyCustomCards
	}

	room, ok := d.store.GetRoomForConnection(connID)
	if !ok {
		return ErrNotInRoom
	}
	if err := room.StartGame(connID, cmd.CustomCards); err != nil {
		return err
	}

	d.log.Info().Str("room", room.Code).Int("players", room.PlayerCount()).Msg("game started")
	d.broadcastState(room)
	d.sendTarget(room)
	return nil
}

func (d *Dispatcher) submitClues(connID string, cmd Command) error {
	clue1, clue2 := strings.TrimSpace(cmd.Clue1), strings.TrimSpace(cmd.Clue2)
	if clue1 == "" || clue2 == "" {
		return game.ErrEmptyClue
	}
	if utf8.RuneCountInString(clue1) > d.limits.MaxClueLength || utf8.RuneCountInString(clue2) > d.limits.MaxClueLength {
		return ErrClueTooLong
	}
	return d.withRoom(connID, func(room *game.Room) error {
		return room.SubmitClues(connID, clue1, clue2)
	})
}

// updateDial drops anything it cannot apply. Updates race with phase
// changes during normal play.
func (d *Dispatcher) updateDial(connID string, cmd Command) {
	if cmd.Position == nil {
		return
	}
	if !d.limitersFor(connID).dial.Allow() {
		return
	}
	room, ok := d.store.GetRoomForConnection(connID)
	if !ok {
		return
	}
	if room.UpdateDial(connID, *cmd.Position) {
		d.broadcastState(room)
	}
}

func (d *Dispatcher) lockLeftRight(connID string, cmd Command) error {
	guess, err := game.ParseDirection(cmd.Guess)
	if err != nil {
		return err
	}
	return d.withRoom(connID, func(room *game.Room) error {
		return room.LockLeftRight(connID, guess)
	})
}

func (d *Dispatcher) nextRound(connID string) error {
	room, ok := d.store.GetRoomForConnection(connID)
	if !ok {
		return ErrNotInRoom
	}
	if err := room.NextRound(connID); err != nil {
		return err
	}

	d.broadcastState(room)
	switch room.Phase() {
	case game.PhaseClueGiving:
		d.sendTarget(room)
	case game.PhaseGameOver:
		scores := room.Scores()
		d.log.Info().Str("room", room.Code).Int("teamA", scores.A).Int("teamB", scores.B).Msg("game over")
	}
	return nil
}

// withRoom runs a mutation against the caller's room and broadcasts on success
func (d *Dispatcher) withRoom(connID string, fn func(*game.Room) error) error {
	room, ok := d.store.GetRoomForConnection(connID)
	if !ok {
		return ErrNotInRoom
	}
	if err := fn(room); err != nil {
		return err
	}
	d.broadcastState(room)
	return nil
}

func (d *Dispatcher) broadcastState(room *game.Room) {
	d.hub.Broadcast(room.PlayerIDs(), stateMessage(MsgState, room.Snapshot()))
}

// sendTarget delivers the hidden target to the psychic's connection only
func (d *Dispatcher) sendTarget(room *game.Room) {
	target, psychicID, ok := room.PsychicTarget()
	if !ok {
		d.log.Warn().Str("room", room.Code).Msg("round has no psychic")
		return
	}
	d.hub.Send(psychicID, targetMessage(target))
}

func (d *Dispatcher) limitersFor(connID string) *connLimiters {
	l, ok := d.limiters[connID]
	if !ok {
		l = &connLimiters{
			dial:     rate.NewLimiter(rate.Limit(d.limits.DialRate), d.limits.DialBurst),
			commands: rate.NewLimiter(rate.Limit(d.limits.CommandRate), d.limits.CommandBurst),
		}
		d.limiters[connID] = l
	}
	return l
}

func (d *Dispatcher) validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrUsernameRequired
	}
	if utf8.RuneCountInString(name) > d.limits.MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func snapshotOf(room *game.Room) *game.PublicState {
	state := room.Snapshot()
	return &state
}
