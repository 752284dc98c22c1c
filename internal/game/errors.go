package game

import "errors"

var (
	ErrRoomFull         = errors.New("room is full")
	ErrDuplicatePlayer  = errors.New("player is already in the room")
	ErrPlayerNotFound   = errors.New("player is not in the room")
	ErrNotHost          = errors.New("only the host can start the game")
	ErrNotEnoughPlayers = errors.New("need at least 1 player on each team")
	ErrWrongPhase       = errors.New("action not allowed in the current phase")
	ErrNotPsychic       = errors.New("only the psychic can submit clues")
	ErrNotActiveTeam    = errors.New("only the active team can lock the guess")
	ErrNotOpposingTeam  = errors.New("only the opposing team can vote left or right")
	ErrEmptyClue        = errors.New("both clues are required")
	ErrInvalidTeam      = errors.New("team must be A or B")
	ErrPsychicLocked    = errors.New("the psychic cannot change teams during a round")
	ErrInvalidDirection = errors.New("guess must be left or right")
	ErrNoCards          = errors.New("no spectrum cards available")
	ErrInvalidCard      = errors.New("spectrum card needs an id and both labels")
)
