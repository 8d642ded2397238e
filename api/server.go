// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation for the development server

package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"rss-it-library/api/handlers"
	"rss-it-library/api/middleware"
	"rss-it-library/core/interfaces"
)

const (
	apiTitle   = "RSS-It API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler())

	return humachi.New(router, humaConfig()), router
}

// NewAPIWithMiddleware creates a new API with logging and rate limiting configured.
// The returned limiter is nil when rate limiting is disabled.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, *middleware.RateLimiter) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests are never rate limited
	router.Use(corsHandler())

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return humachi.New(router, humaConfig()), router, limiter
}

// NewServer builds the API and registers every handler backed by client
func NewServer(client handlers.FeedClient, cfg APIConfig) (http.Handler, *middleware.RateLimiter) {
	humaAPI, router, limiter := NewAPIWithMiddleware(cfg)

	handlers.NewFeedHandler(client).RegisterRoutes(humaAPI)
	handlers.NewValidateHandler(client).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler().RegisterRoutes(humaAPI)

	return router, limiter
}

func corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	})
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Development API for validating and parsing RSS, Atom and JSON feeds"
	return config
}
