// Package backend wires the HTTP server for the summary-kit API.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/cecil-the-coder/summary-kit/pkg/backend/handlers"
	"github.com/cecil-the-coder/summary-kit/pkg/backend/middleware"
)

// Config controls server behavior
type Config struct {
	Host string
	Port int

	// RateLimitRPS and RateLimitBurst bound requests per client IP.
	RateLimitRPS   float64
	RateLimitBurst int

	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for local use.
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
		AllowedOrigins: []string{"*"},
	}
}

// Server is the summary-kit HTTP server
type Server struct {
	cfg     Config
	logger  zerolog.Logger
	httpSrv *http.Server
}

// New builds the server with the full middleware chain and routes.
func New(cfg Config, h *handlers.Handler, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/providers", h.ListProviders)
	mux.HandleFunc("GET /api/ollama/status", h.OllamaStatus)
	mux.HandleFunc("PUT /api/config/apikey", h.UpdateAPIKey)
	mux.HandleFunc("POST /api/summarize", h.Summarize)
	mux.HandleFunc("GET /api/documents/samples", h.ListSamples)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.AllowedOrigins
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = mux
	handler = limiter.Middleware(handler)
	handler = middleware.CORS(corsCfg)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)

	return &Server{
		cfg:    cfg,
		logger: logger,
		httpSrv: &http.Server{
			Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:     handler,
			ReadTimeout: 30 * time.Second,
			// Local generation may legitimately run for two minutes,
			// so the write timeout must sit above that ceiling.
			WriteTimeout: 150 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpSrv.Addr
}

// Handler exposes the wired handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start blocks serving requests until the listener fails or Shutdown
// is called.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpSrv.Addr).Msg("starting server")
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down server")
	return s.httpSrv.Shutdown(ctx)
}
