package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

type roomResponse struct {
	Exists    bool       `json:"exists"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	State     any        `json:"state,omitempty"`
}

// GetRoom reports whether a room exists along with its public state
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := h.store.GetRoom(chi.URLParam(r, "code"))
	if !ok {
		writeJSON(w, http.StatusNotFound, roomResponse{Exists: false})
		return
	}
	writeJSON(w, http.StatusOK, roomResponse{
		Exists:    true,
		CreatedAt: &room.CreatedAt,
		State:     room.Snapshot(),
	})
}

// RoomQRCode serves a PNG QR code that opens the join screen for a room
func (h *Handler) RoomQRCode(w http.ResponseWriter, r *http.Request) {
	room, ok := h.store.GetRoom(chi.URLParam(r, "code"))
	if !ok {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	png, err := generateQRCode(h.joinURL(r, room.Code))
	if err != nil {
		h.log.Error().Err(err).Str("room", room.Code).Msg("failed to generate QR code")
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

func (h *Handler) joinURL(r *http.Request, code string) string {
	base := h.config.Server.PublicURL
	if base == "" {
		base = getBaseURL(r)
	}
	return strings.TrimRight(base, "/") + "/?room=" + url.QueryEscape(code)
}

// generateQRCode generates a PNG QR code for the given URL
func generateQRCode(content string) ([]byte, error) {
	qrc, err := qrcode.NewWith(content,
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium),
		qrcode.WithEncodingMode(qrcode.EncModeByte),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// The standard writer only writes to a named file
	tmp, err := os.CreateTemp("", "qr_*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpFile := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpFile)

	w, err := standard.New(tmpFile,
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(8), // 8 pixels per module
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create writer: %w", err)
	}

	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("failed to save QR code: %w", err)
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read QR code file: %w", err)
	}
	return data, nil
}
