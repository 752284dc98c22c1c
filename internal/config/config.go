package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// This file defines the configuration structures used by viper.go
// The actual loading is handled by viper in viper.go

// ServerConfig represents the server configuration
type ServerConfig struct {
	Server    ServerSettings    `yaml:"server"`
	Game      GameSettings      `yaml:"game"`
	Transport TransportSettings `yaml:"transport"`
}

// ServerSettings contains HTTP server settings
type ServerSettings struct {
	Port            string        `yaml:"port"`
	Host            string        `yaml:"host"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"` // API routes only, never the long-lived streams

	// Rate limiting (using golang.org/x/time/rate)
	RateLimit      float64 `yaml:"rateLimit"` // requests per second
	RateLimitBurst int     `yaml:"rateLimitBurst"`

	MaxRequestSize int64    `yaml:"maxRequestSize"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
	PublicURL      string   `yaml:"publicURL"` // base URL encoded in join QR codes

	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// GameSettings bounds rooms and player input
type GameSettings struct {
	MaxPlayersPerRoom int    `yaml:"maxPlayersPerRoom"`
	MaxNameLength     int    `yaml:"maxNameLength"`
	MaxClueLength     int    `yaml:"maxClueLength"`
	MaxCustomCards    int    `yaml:"maxCustomCards"`
	CardsFile         string `yaml:"cardsFile"` // optional extra card pack

	DialRate  float64 `yaml:"dialRate"` // dial updates per second per connection
	DialBurst int     `yaml:"dialBurst"`

	CommandRate  float64 `yaml:"commandRate"` // all other commands, per second per connection
	CommandBurst int     `yaml:"commandBurst"`
}

// TransportSettings tunes the websocket and SSE connections
type TransportSettings struct {
	ReadBufferSize  int           `yaml:"readBufferSize"`
	WriteBufferSize int           `yaml:"writeBufferSize"`
	MaxMessageSize  int64         `yaml:"maxMessageSize"`
	PingInterval    time.Duration `yaml:"pingInterval"`
	PongWait        time.Duration `yaml:"pongWait"`
	WriteWait       time.Duration `yaml:"writeWait"`
	SendBuffer      int           `yaml:"sendBuffer"`
	SSEKeepalive    time.Duration `yaml:"sseKeepalive"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Port:            "3001",
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    0, // 0 for websocket and SSE support
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  60 * time.Second,

			RateLimit:      10,
			RateLimitBurst: 20,

			MaxRequestSize: 1048576, // 1MB
			AllowedOrigins: []string{"*"},

			LogLevel:  "info",
			LogFormat: "text",
		},
		Game: GameSettings{
			MaxPlayersPerRoom: 20,
			MaxNameLength:     32,
			MaxClueLength:     80,
			MaxCustomCards:    100,
			DialRate:          30,
			DialBurst:         10,
			CommandRate:       5,
			CommandBurst:      20,
		},
		Transport: TransportSettings{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			MaxMessageSize:  65536,
			PingInterval:    30 * time.Second,
			PongWait:        60 * time.Second,
			WriteWait:       10 * time.Second,
			SendBuffer:      64,
			SSEKeepalive:    30 * time.Second,
		},
	}
}

// Validate checks if the configuration is valid
func (c *ServerConfig) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("port must be set")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Server.LogLevel)); err != nil {
		return fmt.Errorf("unknown log level %q", c.Server.LogLevel)
	}
	if c.Server.LogFormat != "text" && c.Server.LogFormat != "json" {
		return fmt.Errorf("logFormat must be text or json, got %q", c.Server.LogFormat)
	}
	if c.Server.RateLimit <= 0 || c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("rateLimit and rateLimitBurst must be positive")
	}
	if c.Server.MaxRequestSize < 1 {
		return fmt.Errorf("maxRequestSize must be positive")
	}

	if c.Game.MaxPlayersPerRoom < 2 {
		return fmt.Errorf("maxPlayersPerRoom must be at least 2")
	}
	if c.Game.MaxNameLength < 1 || c.Game.MaxClueLength < 1 {
		return fmt.Errorf("maxNameLength and maxClueLength must be positive")
	}
	if c.Game.MaxCustomCards < 0 {
		return fmt.Errorf("maxCustomCards cannot be negative")
	}
	if c.Game.DialRate <= 0 || c.Game.DialBurst < 1 {
		return fmt.Errorf("dialRate and dialBurst must be positive")
	}
	if c.Game.CommandRate <= 0 || c.Game.CommandBurst < 1 {
		return fmt.Errorf("commandRate and commandBurst must be positive")
	}

	if c.Transport.SendBuffer < 1 {
		return fmt.Errorf("sendBuffer must be at least 1")
	}
	if c.Transport.MaxMessageSize < 1 {
		return fmt.Errorf("maxMessageSize must be positive")
	}
	if c.Transport.PingInterval <= 0 || c.Transport.PongWait <= c.Transport.PingInterval {
		return fmt.Errorf("pongWait must be longer than a positive pingInterval")
	}
	if c.Transport.WriteWait <= 0 || c.Transport.SSEKeepalive <= 0 {
		return fmt.Errorf("writeWait and sseKeepalive must be positive")
	}

	return nil
}

// Address returns the host:port the server listens on
func (c *ServerConfig) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}
