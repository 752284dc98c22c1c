package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"wavelength"
	"wavelength/internal/config"
	"wavelength/internal/dispatch"
	"wavelength/internal/game"
	"wavelength/internal/handlers"
	"wavelength/internal/store"
)

// App is the wired server
type App struct {
	Store      *store.MemoryStore
	Dispatcher *dispatch.Dispatcher
	Handler    http.Handler
}

// SetupServer wires the card deck, registry, dispatcher and router
func SetupServer(cfg *config.ServerConfig, log zerolog.Logger) (*App, error) {
	cards, err := loadCards(cfg.Game.CardsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize card service: %w", err)
	}
	log.Info().Int("cards", cards.Count()).Msg("card service ready")

	gameStore := store.NewMemoryStore(cards, store.WithMaxPlayers(cfg.Game.MaxPlayersPerRoom))
	d := dispatch.New(gameStore, dispatch.Limits{
		MaxNameLength:  cfg.Game.MaxNameLength,
		MaxClueLength:  cfg.Game.MaxClueLength,
		MaxCustomCards: cfg.Game.MaxCustomCards,
		DialRate:       cfg.Game.DialRate,
		DialBurst:      cfg.Game.DialBurst,
		CommandRate:    cfg.Game.CommandRate,
		CommandBurst:   cfg.Game.CommandBurst,
	}, log.With().Str("component", "dispatch").Logger())

	h := handlers.New(gameStore, d, cfg, log.With().Str("component", "http").Logger())

	return &App{
		Store:      gameStore,
		Dispatcher: d,
		Handler:    handlers.SetupRouter(h, cfg, nil),
	}, nil
}

// loadCards merges the optional extra pack into the embedded built-ins
func loadCards(extraFile string) (*game.CardService, error) {
	return game.NewCardServiceFromFile(wavelength.BuiltinCardsYAML, extraFile)
}

// newHTTPServer applies the configured timeouts
func newHTTPServer(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout, // 0 keeps websocket and SSE streams open
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}
