package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"wavelength/internal/config"
	"wavelength/internal/dispatch"
	"wavelength/internal/game"
	"wavelength/internal/store"
)

// newTestHandler creates a handler whose rooms always get code ABCD first
func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Transport.PingInterval = time.Second
	cfg.Transport.PongWait = 5 * time.Second
	cfg.Transport.SSEKeepalive = time.Minute

	cards, err := game.NewCardService([]byte(`cards: [{ id: t1, left: "Cold", right: "Hot" }]`))
	require.NoError(t, err)

	codes := []string{"ABCD", "EFGH", "JKLM"}
	st := store.NewMemoryStore(cards,
		store.WithMaxPlayers(cfg.Game.MaxPlayersPerRoom),
		store.WithCodeGenerator(func() string {
			code := codes[0]
			if len(codes) > 1 {
				codes = codes[1:]
			}
			return code
		}),
	)
	d := dispatch.New(st, dispatch.DefaultLimits(), zerolog.Nop())
	return New(st, d, cfg, zerolog.Nop())
}

// setupTestRouter creates a router without rate limiting or request logs
func setupTestRouter(h *Handler) http.Handler {
	return SetupRouter(h, h.config, &RouterOptions{
		DisableRateLimiting:  true,
		DisableRequestLogger: true,
	})
}

// seatRoom opens room ABCD through the dispatcher with a queued connection
func seatRoom(t *testing.T, h *Handler, connID, name string) *dispatch.QueueConn {
	t.Helper()
	conn := dispatch.NewQueueConn(connID, 16)
	h.dispatcher.Connect(conn)
	require.NoError(t, h.dispatcher.Handle(connID, dispatch.Command{Type: dispatch.CmdCreateRoom, Username: name}))
	return conn
}

func drain(conn *dispatch.QueueConn) []dispatch.Message {
	var msgs []dispatch.Message
	for {
		select {
		case msg := <-conn.Outbox():
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}
