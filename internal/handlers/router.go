package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"wavelength/internal/config"
	localMiddleware "wavelength/internal/middleware"
)

// RouterOptions allows customization of router setup for tests
type RouterOptions struct {
	DisableRateLimiting  bool
	DisableRequestLogger bool
	CustomMiddleware     []func(http.Handler) http.Handler
}

// SetupRouter creates the application router with all routes and middleware
func SetupRouter(h *Handler, cfg *config.ServerConfig, opts *RouterOptions) *chi.Mux {
	if opts == nil {
		opts = &RouterOptions{}
	}

	r := chi.NewRouter()

	// Chi's built-in middleware (conditionally applied)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if !opts.DisableRequestLogger {
		r.Use(localMiddleware.RequestLogger(h.log))
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Datastar-Request"},
		MaxAge:         300,
	}))

	// Our custom middleware
	r.Use(localMiddleware.RequestSizeLimiter(cfg.Server.MaxRequestSize))
	r.Use(localMiddleware.SecurityHeaders())

	for _, mw := range opts.CustomMiddleware {
		r.Use(mw)
	}

	// Health check endpoints (no rate limit)
	r.Get("/health", h.Health)
	r.Get("/health/live", h.Live)
	r.Get("/health/ready", h.Ready)

	// Commands from SSE clients carry dial updates at a high rate and are
	// limited per connection by the dispatcher instead
	r.With(middleware.Timeout(cfg.Server.RequestTimeout)).
		Post("/sse/commands/{type}", h.PostCommand)

	r.Group(func(r chi.Router) {
		// Rate limiting (conditionally applied)
		if !opts.DisableRateLimiting {
			rateLimiter := localMiddleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitBurst)
			r.Use(rateLimiter.Middleware())
		}

		// Long-lived connections, never behind a timeout
		r.Get("/ws", h.ServeWebsocket)
		r.Get("/sse", ValidateSSERequest(h.StreamEvents))

		r.Route("/api", func(r chi.Router) {
			r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
			r.Get("/rooms/{code}", h.GetRoom)
			r.Get("/rooms/{code}/qr.png", h.RoomQRCode)
		})
	})

	return r
}
