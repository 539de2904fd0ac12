// Package web provides the HTTP API of the validation service.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JonMunkholm/geoanla/internal/config"
	"github.com/JonMunkholm/geoanla/internal/core"
	"github.com/JonMunkholm/geoanla/internal/elevation"
	"github.com/JonMunkholm/geoanla/internal/web/middleware"
)

// Server is the HTTP server of the validation service.
type Server struct {
	service   *core.Service
	elevation *elevation.Client
	cfg       *config.Config
	gatherer  prometheus.Gatherer
	router    *chi.Mux
	server    *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithElevation enables the elevation endpoint.
func WithElevation(c *elevation.Client) Option {
	return func(s *Server) { s.elevation = c }
}

// WithGatherer sets the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		service:  service,
		cfg:      cfg,
		gatherer: prometheus.DefaultGatherer,
		router:   chi.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(&s.cfg.Security))

		// Record types
		r.Get("/schemas", s.handleListSchemas)
		r.Get("/schemas/{key}", s.handleGetSchema)

		// Catalog
		r.Get("/domains", s.handleListDomains)
		r.Get("/domains/{name}", s.handleGetDomain)
		r.Get("/domains/{name}/resolve", s.handleResolve)

		// Validation
		r.Post("/extract/{key}", s.handleExtract)
		r.Post("/validate/{key}", s.handleValidate)
		r.Get("/status", s.handleStatus)

		// Stored results
		r.Get("/results", s.handleListResults)
		r.Get("/results/{batchID}", s.handleGetResult)

		// Elevation
		r.Post("/elevation", s.handleElevation)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	slog.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// JSON API only: nothing may be loaded from a response
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
