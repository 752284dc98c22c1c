package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	datastar "github.com/starfederation/datastar-go/datastar"

	"wavelength/internal/dispatch"
)

// commandSignals is what a datastar client posts: the session token its
// stream was opened with alongside the command fields
type commandSignals struct {
	SessionToken string `json:"sessionToken"`
	dispatch.Command
}

// PostCommand applies a command for an SSE connection. The outcome,
// including any rejection, arrives on the connection's stream.
func (h *Handler) PostCommand(w http.ResponseWriter, r *http.Request) {
	var signals commandSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid signals")
		return
	}
	if signals.SessionToken == "" {
		writeJSONError(w, http.StatusBadRequest, "sessionToken is required")
		return
	}
	connID, ok := h.sessions.lookup(signals.SessionToken)
	if !ok || !h.dispatcher.IsConnected(connID) {
		writeJSONError(w, http.StatusNotFound, "session not found")
		return
	}

	cmd := signals.Command
	cmd.Type = dispatch.CommandType(chi.URLParam(r, "type"))
	h.dispatcher.Handle(connID, cmd)

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
