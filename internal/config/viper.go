package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration using Viper
// Priority order: Environment variables > Config file > Defaults
func LoadConfig(configPath string) (*ServerConfig, error) {
	v := viper.New()

	v.SetConfigName("server")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/wavelength")
	}

	// Enable environment variable binding
	// These allow both SERVER_PORT and PORT to work
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.host", "HOST")
	v.BindEnv("server.loglevel", "LOG_LEVEL")
	v.BindEnv("server.logformat", "LOG_FORMAT")
	v.BindEnv("server.ratelimit", "RATE_LIMIT")
	v.BindEnv("server.ratelimitburst", "RATE_LIMIT_BURST")
	v.BindEnv("server.maxrequestsize", "MAX_REQUEST_SIZE")
	v.BindEnv("server.allowedorigins", "ALLOWED_ORIGINS")
	v.BindEnv("server.publicurl", "PUBLIC_URL")
	v.BindEnv("game.cardsfile", "CARDS_FILE")

	setDefaults(v, DefaultConfig())

	// The config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &ServerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d *ServerConfig) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.readtimeout", d.Server.ReadTimeout)
	v.SetDefault("server.writetimeout", d.Server.WriteTimeout)
	v.SetDefault("server.idletimeout", d.Server.IdleTimeout)
	v.SetDefault("server.shutdowntimeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.requesttimeout", d.Server.RequestTimeout)
	v.SetDefault("server.ratelimit", d.Server.RateLimit)
	v.SetDefault("server.ratelimitburst", d.Server.RateLimitBurst)
	v.SetDefault("server.maxrequestsize", d.Server.MaxRequestSize)
	v.SetDefault("server.allowedorigins", d.Server.AllowedOrigins)
	v.SetDefault("server.publicurl", d.Server.PublicURL)
	v.SetDefault("server.loglevel", d.Server.LogLevel)
	v.SetDefault("server.logformat", d.Server.LogFormat)

	v.SetDefault("game.maxplayersperroom", d.Game.MaxPlayersPerRoom)
	v.SetDefault("game.maxnamelength", d.Game.MaxNameLength)
	v.SetDefault("game.maxcluelength", d.Game.MaxClueLength)
	v.SetDefault("game.maxcustomcards", d.Game.MaxCustomCards)
	v.SetDefault("game.cardsfile", d.Game.CardsFile)
	v.SetDefault("game.dialrate", d.Game.DialRate)
	v.SetDefault("game.dialburst", d.Game.DialBurst)
	v.SetDefault("game.commandrate", d.Game.CommandRate)
	v.SetDefault("game.commandburst", d.Game.CommandBurst)

	v.SetDefault("transport.readbuffersize", d.Transport.ReadBufferSize)
	v.SetDefault("transport.writebuffersize", d.Transport.WriteBufferSize)
	v.SetDefault("transport.maxmessagesize", d.Transport.MaxMessageSize)
	v.SetDefault("transport.pinginterval", d.Transport.PingInterval)
	v.SetDefault("transport.pongwait", d.Transport.PongWait)
	v.SetDefault("transport.writewait", d.Transport.WriteWait)
	v.SetDefault("transport.sendbuffer", d.Transport.SendBuffer)
	v.SetDefault("transport.ssekeepalive", d.Transport.SSEKeepalive)
}
