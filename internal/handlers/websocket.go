package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"

	"wavelength/internal/dispatch"
)

func (h *Handler) upgrader() websocket.Upgrader {
	origins := h.config.Server.AllowedOrigins
	return websocket.Upgrader{
		ReadBufferSize:  h.config.Transport.ReadBufferSize,
		WriteBufferSize: h.config.Transport.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin)
		},
	}
}

// ServeWebsocket upgrades the request and pumps commands and messages
// between the socket and the dispatcher until either side closes
func (h *Handler) ServeWebsocket(w http.ResponseWriter, r *http.Request) {
	upgrader := h.upgrader()
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		h.log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	conn := dispatch.NewQueueConn(newConnectionID(), h.config.Transport.SendBuffer)
	h.dispatcher.Connect(conn)

	go h.writePump(ws, conn)
	h.readPump(ws, conn)

	conn.Close()
	h.dispatcher.Disconnect(conn.ID())
}

func (h *Handler) readPump(ws *websocket.Conn, conn *dispatch.QueueConn) {
	t := h.config.Transport
	ws.SetReadLimit(t.MaxMessageSize)
	ws.SetReadDeadline(time.Now().Add(t.PongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(t.PongWait))
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug().Err(err).Str("conn", conn.ID()).Msg("websocket closed unexpectedly")
			}
			return
		}

		cmd, err := dispatch.DecodeCommand(data)
		if err != nil {
			h.dispatcher.Reject(conn.ID(), err)
			continue
		}
		// Rejections are reported to the client by the dispatcher
		h.dispatcher.Handle(conn.ID(), cmd)
	}
}

func (h *Handler) writePump(ws *websocket.Conn, conn *dispatch.QueueConn) {
	t := h.config.Transport
	ticker := time.NewTicker(t.PingInterval)
	defer func() {
		ticker.Stop()
		ws.Close()
	}()

	for {
		select {
		case msg := <-conn.Outbox():
			ws.SetWriteDeadline(time.Now().Add(t.WriteWait))
			if err := ws.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(t.WriteWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-conn.Done():
			ws.SetWriteDeadline(time.Now().Add(t.WriteWait))
			ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
