package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wavelength/internal/config"
	"wavelength/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logging.New(cfg.Server.LogLevel, cfg.Server.LogFormat, os.Stdout)
	if err != nil {
		return err
	}
	log.Info().
		Int("maxPlayersPerRoom", cfg.Game.MaxPlayersPerRoom).
		Strs("allowedOrigins", cfg.Server.AllowedOrigins).
		Msg("loaded configuration")

	app, err := SetupServer(cfg, log)
	if err != nil {
		return err
	}
	server := newHTTPServer(cfg, app.Handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown does not wait for hijacked websockets; they end with the process
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	rooms, conns := app.Store.Stats()
	log.Info().Int("rooms", rooms).Int("players", conns).Msg("server gracefully stopped")
	return nil
}
