// Package router assembles the development server's chi router.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/fitai/fitai/internal/cache"
	"github.com/fitai/fitai/internal/config"
	"github.com/fitai/fitai/internal/handler"
	"github.com/fitai/fitai/internal/metrics"
	"github.com/fitai/fitai/internal/middleware"
	"github.com/fitai/fitai/internal/service"
)

// Deps holds what the routes are served from.
type Deps struct {
	Logger   *slog.Logger
	Records  handler.Records
	Accounts *service.AccountService
	Cache    cache.Store
	Metrics  *metrics.InMemoryRecorder
}

// New configures the chi router with all routes and middleware.
func New(cfg *config.Config, deps Deps) *chi.Mux {
	logger := deps.Logger

	h := handler.New()
	healthHandler := handler.NewHealthHandler(deps.Cache)
	metricsHandler := handler.NewMetricsHandler(deps.Metrics)
	authHandler := handler.NewAuthHandler(deps.Accounts, logger)
	userHandler := handler.NewUserHandler(deps.Records, logger)
	entryHandler := handler.NewFoodEntryHandler(deps.Records, logger)
	goalHandler := handler.NewGoalHandler(deps.Records, logger)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger, deps.Metrics))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.GetCORSAllowedOrigins())))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Health and metrics endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	// Root info endpoint
	r.Get("/", h.Index)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  logger,
		Limiter: deps.Cache,
		Enabled: cfg.RateLimitAuthEnabled,
		RPS:     cfg.RateLimitAuthRPS,
		Burst:   cfg.RateLimitAuthBurst,
	}

	// Credential endpoints, rate limited per client IP
	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimitIP("auth", rateLimitCfg))

		r.Post("/signup", authHandler.SignUp)
		r.Post("/signin", authHandler.SignIn)
		r.Post("/signout", authHandler.SignOut)
	})

	authCfg := middleware.AuthConfig{
		Logger:        logger,
		Authenticator: deps.Accounts,
		Metrics:       deps.Metrics,
	}

	// Data routes (require a bearer token)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(authCfg))

		r.Route("/users/{id}", func(r chi.Router) {
			r.Use(middleware.RequireOwner("id"))
			r.Get("/", userHandler.Get)
			r.Put("/", userHandler.Update)
		})

		r.Route("/food-entries", func(r chi.Router) {
			r.Get("/", entryHandler.List)
			r.Post("/", entryHandler.Create)
			r.Put("/{id}", entryHandler.Update)
			r.Delete("/{id}", entryHandler.Delete)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/active", goalHandler.Active)
			r.Post("/", goalHandler.Create)
			r.Put("/{id}", goalHandler.Update)
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
