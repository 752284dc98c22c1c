package dispatch

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavelength/internal/game"
	"wavelength/internal/store"
)

func TestDecodeCommand(t *testing.T) {
	t.Run("full command", func(t *testing.T) {
		cmd, err := DecodeCommand([]byte(`{
			"type": "start-game",
			"customCards": [{"id": "c1", "left": "Bad", "right": "Good"}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, CmdStartGame, cmd.Type)
		require.Len(t, cmd.CustomCards, 1)
		assert.Equal(t, "Good", cmd.CustomCards[0].Right)
	})

	t.Run("dial at zero keeps its position", func(t *testing.T) {
		cmd, err := DecodeCommand([]byte(`{"type":"update-dial","position":0}`))
		require.NoError(t, err)
		require.NotNil(t, cmd.Position)
		assert.Equal(t, 0.0, *cmd.Position)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := DecodeCommand([]byte(`{"type":`))
		assert.ErrorIs(t, err, ErrMalformedCommand)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := DecodeCommand([]byte(`{"username":"Alice"}`))
		assert.ErrorIs(t, err, ErrMalformedCommand)
	})
}

func TestMessageEncoding(t *testing.T) {
	data, err := json.Marshal(targetMessage(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"psychic-target","target":0}`, string(data))

	data, err = json.Marshal(errorMessage(game.ErrNotHost))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"error","message":"only the host can start the game"}`, string(data))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{ErrUsernameRequired, KindValidation},
		{game.ErrEmptyClue, KindValidation},
		{fmt.Errorf("%w: \"x\"", game.ErrInvalidCard), KindValidation},
		{game.ErrNotHost, KindAuthorization},
		{game.ErrNotPsychic, KindAuthorization},
		{game.ErrNotOpposingTeam, KindAuthorization},
		{fmt.Errorf("%w: room is in LOBBY", game.ErrWrongPhase), KindPhase},
		{store.ErrRoomNotFound, KindNotFound},
		{ErrNotInRoom, KindNotFound},
		{ErrRateLimited, KindRateLimited},
		{store.ErrCodeSpaceExhausted, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestQueueConn(t *testing.T) {
	c := NewQueueConn("c1", 1)
	assert.Equal(t, "c1", c.ID())

	require.NoError(t, c.Send(Message{Type: MsgState}))
	assert.ErrorIs(t, c.Send(Message{Type: MsgState}), ErrSendBufferFull)

	c.Close()
	c.Close()
	assert.ErrorIs(t, c.Send(Message{Type: MsgState}), ErrConnClosed)

	msg := <-c.Outbox()
	assert.Equal(t, MsgState, msg.Type)
}
