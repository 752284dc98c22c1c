package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("LoadDefaultWhenMissing", func(t *testing.T) {
		config, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "3001", config.Server.Port)
		assert.Equal(t, 20, config.Game.MaxPlayersPerRoom)
		assert.Equal(t, 32, config.Game.MaxNameLength)
		assert.Equal(t, 80, config.Game.MaxClueLength)
		assert.Equal(t, 100, config.Game.MaxCustomCards)
		assert.Equal(t, 30.0, config.Game.DialRate)
		assert.Equal(t, 10, config.Game.DialBurst)
		assert.Equal(t, 5.0, config.Game.CommandRate)
		assert.Equal(t, 20, config.Game.CommandBurst)
		assert.Equal(t, 30*time.Second, config.Transport.PingInterval)
		assert.Equal(t, []string{"*"}, config.Server.AllowedOrigins)
	})

	t.Run("LoadFromYAML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "server.yaml")
		yamlContent := `
server:
  port: "8080"
  logFormat: json
  requestTimeout: 5s
  allowedOrigins:
    - https://wavelength.example
game:
  maxPlayersPerRoom: 8
  cardsFile: /srv/cards.yaml
transport:
  sendBuffer: 16
  sseKeepalive: 10s
`
		require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

		config, err := LoadConfig(configPath)
		require.NoError(t, err)

		assert.Equal(t, "8080", config.Server.Port)
		assert.Equal(t, "json", config.Server.LogFormat)
		assert.Equal(t, 5*time.Second, config.Server.RequestTimeout)
		assert.Equal(t, []string{"https://wavelength.example"}, config.Server.AllowedOrigins)
		assert.Equal(t, 8, config.Game.MaxPlayersPerRoom)
		assert.Equal(t, "/srv/cards.yaml", config.Game.CardsFile)
		assert.Equal(t, 16, config.Transport.SendBuffer)
		assert.Equal(t, 10*time.Second, config.Transport.SSEKeepalive)
		// untouched keys keep their defaults
		assert.Equal(t, 80, config.Game.MaxClueLength)
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "server.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: \"8080\"\n"), 0644))

		t.Setenv("PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("PUBLIC_URL", "https://play.example")
		t.Setenv("CARDS_FILE", "/tmp/extra.yaml")

		config, err := LoadConfig(configPath)
		require.NoError(t, err)

		assert.Equal(t, "9090", config.Server.Port)
		assert.Equal(t, "debug", config.Server.LogLevel)
		assert.Equal(t, "https://play.example", config.Server.PublicURL)
		assert.Equal(t, "/tmp/extra.yaml", config.Game.CardsFile)
	})

	t.Run("InvalidFileIsRejected", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "server.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("server: [unterminated"), 0644))

		_, err := LoadConfig(configPath)
		assert.Error(t, err)
	})

	t.Run("InvalidValuesAreRejected", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "server.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("game:\n  maxPlayersPerRoom: 1\n"), 0644))

		_, err := LoadConfig(configPath)
		assert.ErrorContains(t, err, "maxPlayersPerRoom")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ServerConfig)
		errMsg string
	}{
		{"defaults are valid", func(*ServerConfig) {}, ""},
		{"missing port", func(c *ServerConfig) { c.Server.Port = "" }, "port"},
		{"unknown log level", func(c *ServerConfig) { c.Server.LogLevel = "loud" }, "log level"},
		{"unknown log format", func(c *ServerConfig) { c.Server.LogFormat = "xml" }, "logFormat"},
		{"zero rate limit", func(c *ServerConfig) { c.Server.RateLimit = 0 }, "rateLimit"},
		{"zero request size", func(c *ServerConfig) { c.Server.MaxRequestSize = 0 }, "maxRequestSize"},
		{"zero name length", func(c *ServerConfig) { c.Game.MaxNameLength = 0 }, "maxNameLength"},
		{"negative custom cards", func(c *ServerConfig) { c.Game.MaxCustomCards = -1 }, "maxCustomCards"},
		{"zero dial burst", func(c *ServerConfig) { c.Game.DialBurst = 0 }, "dialBurst"},
		{"zero command rate", func(c *ServerConfig) { c.Game.CommandRate = 0 }, "commandRate"},
		{"empty send buffer", func(c *ServerConfig) { c.Transport.SendBuffer = 0 }, "sendBuffer"},
		{"pong shorter than ping", func(c *ServerConfig) { c.Transport.PongWait = time.Second }, "pongWait"},
		{"zero keepalive", func(c *ServerConfig) { c.Transport.SSEKeepalive = 0 }, "sseKeepalive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.errMsg)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "0.0.0.0:3001", cfg.Address())
}
