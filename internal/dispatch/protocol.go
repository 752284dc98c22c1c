package dispatch

import (
	"encoding/json"
	"fmt"

	"wavelength/internal/game"
)

// CommandType names an inbound client action
type CommandType string

const (
	CmdCreateRoom    CommandType = "create-room"
	CmdJoinRoom      CommandType = "join-room"
	CmdAssignTeam    CommandType = "assign-team"
	CmdStartGame     CommandType = "start-game"
	CmdSubmitClues   CommandType = "submit-clues"
	CmdUpdateDial    CommandType = "update-dial"
	CmdLockGuess     CommandType = "lock-guess"
	CmdLockLeftRight CommandType = "lock-left-right"
	CmdNextRound     CommandType = "next-round"
)

// Command is one inbound action. Only the fields its type needs are read.
type Command struct {
	Type        CommandType         `json:"type"`
	Username    string              `json:"username,omitempty"`
	RoomCode    string              `json:"roomCode,omitempty"`
	Team        string              `json:"team,omitempty"`
	CustomCards []game.SpectrumCard `json:"customCards,omitempty"`
	Clue1       string              `json:"clue1,omitempty"`
	Clue2       string              `json:"clue2,omitempty"`
	Position    *float64            `json:"position,omitempty"`
	Guess       string              `json:"guess,omitempty"`
}

// DecodeCommand parses a JSON command frame
func DecodeCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}
	if cmd.Type == "" {
		return Command{}, fmt.Errorf("%w: missing type", ErrMalformedCommand)
	}
	return cmd, nil
}

// MessageType names an outbound server message
type MessageType string

const (
	MsgConnected     MessageType = "connected"
	MsgRoomCreated   MessageType = "room-created"
	MsgRoomJoined    MessageType = "room-joined"
	MsgState         MessageType = "state"
	MsgPsychicTarget MessageType = "psychic-target"
	MsgError         MessageType = "error"
)

// Message is one outbound frame
type Message struct {
	Type     MessageType       `json:"type"`
	ConnID   string            `json:"connId,omitempty"`
	RoomCode string            `json:"roomCode,omitempty"`
	State    *game.PublicState `json:"state,omitempty"`
	Target   *float64          `json:"target,omitempty"`
	Message  string            `json:"message,omitempty"`
}

func connectedMessage(connID string) Message {
	return Message{Type: MsgConnected, ConnID: connID}
}

func stateMessage(t MessageType, state game.PublicState) Message {
	return Message{Type: t, State: &state}
}

func targetMessage(target float64) Message {
	return Message{Type: MsgPsychicTarget, Target: &target}
}

func errorMessage(err error) Message {
	return Message{Type: MsgError, Message: err.Error()}
}
