package handlers

import (
	"fmt"
	"net/http"
	"time"

	datastar "github.com/starfederation/datastar-go/datastar"

	"wavelength/internal/dispatch"
)

// StreamEvents opens an SSE connection. The first signal patch carries
// the sessionToken the client must send with every command; the connId
// that follows only identifies the player in room state.
func (h *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	conn := dispatch.NewQueueConn(newConnectionID(), h.config.Transport.SendBuffer)
	token := h.sessions.open(conn.ID())
	defer h.sessions.close(token)

	if err := sse.MarshalAndPatchSignals(map[string]any{"sessionToken": token}); err != nil {
		h.log.Debug().Err(err).Str("conn", conn.ID()).Msg("sse write failed")
		return
	}

	h.dispatcher.Connect(conn)
	defer func() {
		conn.Close()
		h.dispatcher.Disconnect(conn.ID())
	}()

	keepalive := time.NewTicker(h.config.Transport.SSEKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-conn.Done():
			h.log.Debug().Str("conn", conn.ID()).Msg("sse connection dropped")
			return
		case <-keepalive.C:
			if err := sse.Send("keepalive", []string{fmt.Sprintf(`{"time":"%s"}`, time.Now().Format(time.RFC3339))}); err != nil {
				return
			}
		case msg := <-conn.Outbox():
			if err := sse.MarshalAndPatchSignals(signalsFor(msg)); err != nil {
				h.log.Debug().Err(err).Str("conn", conn.ID()).Msg("sse write failed")
				return
			}
		}
	}
}

// signalsFor maps an outbound message onto datastar signals
func signalsFor(msg dispatch.Message) map[string]any {
	signals := map[string]any{"lastMessage": msg.Type}
	switch msg.Type {
	case dispatch.MsgConnected:
		signals["connId"] = msg.ConnID
	case dispatch.MsgRoomCreated, dispatch.MsgRoomJoined, dispatch.MsgState:
		signals["state"] = msg.State
		if msg.State != nil {
			signals["roomCode"] = msg.State.RoomCode
		}
		signals["error"] = ""
	case dispatch.MsgPsychicTarget:
		signals["target"] = msg.Target
	case dispatch.MsgError:
		signals["error"] = msg.Message
	}
	return signals
}
