// Package server exposes the analyzer over HTTP: one analyze endpoint
// plus health and metrics, with CORS and rate limiting at the edge.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/sells-group/finhealth/internal/analyzer"
	"github.com/sells-group/finhealth/internal/config"
)

// Server wires the analyzer to the HTTP boundary. It holds no
// per-request state; requests run fully in parallel.
type Server struct {
	analyzer *analyzer.Analyzer
	metrics  *Metrics
	limiter  *rate.Limiter
	cfg      config.ServerConfig
}

// New builds a Server from configuration. A zero rate limit disables
// limiting.
func New(cfg config.ServerConfig, a *analyzer.Analyzer) *Server {
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = int(cfg.RateLimitRPS)
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	return &Server{
		analyzer: a,
		metrics:  NewMetrics(),
		limiter:  limiter,
		cfg:      cfg,
	}
}

// Router assembles the chi route tree with all middleware applied.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(recoverer(s.metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(s.limiter, s.metrics))
		r.Post("/analyze", s.handleAnalyze)
	})

	return r
}
