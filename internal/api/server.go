// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	handler "github.com/twstock/tracker/internal/api/handler/api"
	"github.com/twstock/tracker/internal/api/middleware"
	"github.com/twstock/tracker/internal/metrics"
	"github.com/twstock/tracker/internal/series"
	"github.com/twstock/tracker/internal/session"
)

// Server is the HTTP server exposing the quote pipeline.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// Config holds server configuration
type Config struct {
	Host        string
	Port        int
	APIKey      string
	MetricsPath string // empty disables the metrics endpoint
}

// Dependencies holds the pipeline components the server exposes.
type Dependencies struct {
	Session    *session.Session
	Aggregator *series.Aggregator
	Metrics    *metrics.Registry
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, deps Dependencies, logger *zap.Logger) (*Server, error) {
	if deps.Session == nil || deps.Aggregator == nil {
		return nil, fmt.Errorf("session and aggregator are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			// Series builds pace five upstream calls a second apart.
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
		mux:    mux,
	}

	s.setupRoutes(cfg, deps)
	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(cfg Config, deps Dependencies) {
	probeHandler := handler.NewProbeHandler(deps.Session, deps.Metrics)
	quoteHandler := handler.NewQuoteHandler(deps.Session, deps.Metrics)
	seriesHandler := handler.NewSeriesHandler(deps.Aggregator, deps.Metrics)

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("/api/v1/probe", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			probeHandler.State(w, r)
			return
		}
		probeHandler.Trigger(w, r)
	})
	apiMux.HandleFunc("/api/v1/quote/", func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/api/v1/quote/")
		if symbol == "" || strings.Contains(symbol, "/") {
			http.NotFound(w, r)
			return
		}
		quoteHandler.Get(w, r, symbol)
	})
	apiMux.HandleFunc("/api/v1/series/", func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/api/v1/series/")
		if symbol == "" || strings.Contains(symbol, "/") {
			http.NotFound(w, r)
			return
		}
		seriesHandler.Get(w, r, symbol)
	})

	var apiHandler http.Handler = apiMux
	apiHandler = middleware.APIKeyAuth(cfg.APIKey)(apiHandler)
	if deps.Metrics != nil {
		apiHandler = metrics.HTTPMiddleware(deps.Metrics)(apiHandler)
	}
	apiHandler = metrics.LoggingMiddleware(s.logger)(apiHandler)

	s.mux.Handle("/api/v1/", apiHandler)
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if deps.Metrics != nil && cfg.MetricsPath != "" {
		s.mux.Handle(cfg.MetricsPath, promhttp.HandlerFor(
			deps.Metrics.Registry,
			promhttp.HandlerOpts{},
		))
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
