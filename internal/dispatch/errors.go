package dispatch

import (
	"errors"

	"wavelength/internal/game"
	"wavelength/internal/store"
)

var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrRoomCodeRequired   = errors.New("room code is required")
	ErrNotInRoom          = errors.New("you are not in a room")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrNameTooLong        = errors.New("username is too long")
	ErrClueTooLong        = errors.New("clue is too long")
	ErrTooManyCustomCards = errors.New("too many custom cards")
	ErrMalformedCommand   = errors.New("malformed command")
	ErrSendBufferFull     = errors.New("send buffer full")
	ErrConnClosed         = errors.New("connection closed")
	ErrRateLimited        = errors.New("too many commands, slow down")
)

// ErrorKind groups rejections for logging
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindAuthorization ErrorKind = "authorization"
	KindPhase         ErrorKind = "phase"
	KindNotFound      ErrorKind = "not_found"
	KindRateLimited   ErrorKind = "rate_limited"
	KindInternal      ErrorKind = "internal"
)

// Classify maps an error returned by Handle onto its kind
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, game.ErrWrongPhase):
		return KindPhase
	case errors.Is(err, game.ErrNotHost),
		errors.Is(err, game.ErrNotPsychic),
		errors.Is(err, game.ErrNotActiveTeam),
		errors.Is(err, game.ErrNotOpposingTeam),
		errors.Is(err, game.ErrPsychicLocked),
		errors.Is(err, store.ErrAlreadyInRoom):
		return KindAuthorization
	case errors.Is(err, store.ErrRoomNotFound),
		errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, ErrNotInRoom):
		return KindNotFound
	case errors.Is(err, ErrUsernameRequired),
		errors.Is(err, ErrRoomCodeRequired),
		errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrClueTooLong),
		errors.Is(err, ErrTooManyCustomCards),
		errors.Is(err, ErrMalformedCommand),
		errors.Is(err, game.ErrEmptyClue),
		errors.Is(err, game.ErrInvalidTeam),
		errors.Is(err, game.ErrInvalidDirection),
		errors.Is(err, game.ErrInvalidCard),
		errors.Is(err, game.ErrNotEnoughPlayers),
		errors.Is(err, game.ErrRoomFull),
		errors.Is(err, game.ErrDuplicatePlayer):
		return KindValidation
	default:
		return KindInternal
	}
}
