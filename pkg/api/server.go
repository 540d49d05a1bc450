// Package api provides the Bifrost frame inspector REST API: callers
// submit raw byte streams and get back the frames a scan recovers,
// along with corruption statistics.
package api

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ssargent/bifrost/pkg/frame"
	"github.com/ssargent/bifrost/pkg/telemetry"
)

// Server holds the inspector API state
type Server struct {
	config  ServerConfig
	metrics *telemetry.Metrics
	logger  zerolog.Logger

	mu    sync.Mutex
	scans int
	total frame.Stats
}

// NewServer creates a new inspector server
func NewServer(config ServerConfig, metrics *telemetry.Metrics, logger zerolog.Logger) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// Router builds the chi router with all routes configured
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication for the inspector routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(s.config.APIKey))

		r.Get("/health", s.handleHealth)
		r.Post("/scan", s.handleScan)
		r.Get("/stats", s.handleStats)
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig) error {
	logger := NewLogger(config.LogLevel)
	metrics := telemetry.NewMetrics()
	server := NewServer(config, metrics, logger)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	logger.Info().Str("addr", addr).Msg("bifrost inspector listening")
	return http.ListenAndServe(addr, server.Router())
}

// NewLogger builds the service logger at the given level, defaulting to
// info when the level is absent or unparseable.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
