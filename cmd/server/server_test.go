package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavelength/internal/config"
)

func TestSetupServer(t *testing.T) {
	app, err := SetupServer(config.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, app.Handler)

	testCases := []struct {
		method       string
		path         string
		body         string
		expectedCode int
	}{
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/health/live", "", http.StatusOK},
		{"GET", "/health/ready", "", http.StatusOK},
		{"GET", "/api/rooms/ZZZZ", "", http.StatusNotFound},
		{"GET", "/api/rooms/ZZZZ/qr.png", "", http.StatusNotFound},
		{"GET", "/ws", "", http.StatusBadRequest}, // not an upgrade request
		{"POST", "/sse/commands/create-room", `{"username":"Alice"}`, http.StatusBadRequest},
		{"GET", "/sse?bogus=1", "", http.StatusBadRequest},
		{"GET", "/", "", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			app.Handler.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)
		})
	}
}

func TestSetupServerCards(t *testing.T) {
	t.Run("extra card pack", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extra.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`cards: [{ id: x1, left: "Calm", right: "Chaotic" }]`), 0644))

		cfg := config.DefaultConfig()
		cfg.Game.CardsFile = path
		cards, err := loadCards(cfg.Game.CardsFile)
		require.NoError(t, err)
		assert.Equal(t, 41, cards.Count())

		_, err = SetupServer(cfg, zerolog.Nop())
		assert.NoError(t, err)
	})

	t.Run("missing card pack", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Game.CardsFile = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := SetupServer(cfg, zerolog.Nop())
		assert.ErrorContains(t, err, "card service")
	})
}

func TestNewHTTPServer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Port = "4000"
	cfg.Server.ReadTimeout = 5 * time.Second

	server := newHTTPServer(cfg, http.NotFoundHandler())
	assert.Equal(t, "0.0.0.0:4000", server.Addr)
	assert.Equal(t, 5*time.Second, server.ReadTimeout)
	assert.Zero(t, server.WriteTimeout)
}
