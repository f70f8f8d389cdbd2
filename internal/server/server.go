// Package server exposes prompt rendering over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"cotprompt/internal/config"
	"cotprompt/pkg/logger"
)

const (
	healthPath = "/api/health"
	renderPath = "/api/v1/prompt/render"
)

// Server is the HTTP render API.
type Server struct {
	httpServer *http.Server
	router     *mux.Router
	version    string
	started    time.Time

	mu    sync.RWMutex
	agent *config.AgentConfig
}

// New creates a server. agent is the configuration used for requests that
// do not carry their own; it may be nil.
func New(cfg config.ServerConfig, agent *config.AgentConfig, version string) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		version: version,
		started: time.Now(),
		agent:   agent,
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc(healthPath, s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc(renderPath, s.handleRender).Methods(http.MethodPost)
}

// Handler returns the router wrapped in middleware:
// recovery -> request ID -> logging.
func (s *Server) Handler() http.Handler {
	return recovery(requestID(logging(s.router)))
}

// Agent returns the current fallback agent configuration.
func (s *Server) Agent() *config.AgentConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agent
}

// SetAgent replaces the fallback agent configuration, e.g. after a config
// file reload. In-flight requests keep the value they started with.
func (s *Server) SetAgent(agent *config.AgentConfig) {
	s.mu.Lock()
	s.agent = agent
	s.mu.Unlock()
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	logger.Info().Str("addr", s.httpServer.Addr).Msg("starting render server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info().Msg("shutting down render server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
