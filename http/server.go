package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ServerConfig sizes the listener and its timeouts.
type ServerConfig struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// Server runs the JSON API with recovery and request logging wrapped
// around every route.
type Server struct {
	server *http.Server
	log    *slog.Logger
}

func NewServer(config ServerConfig, handler *Handler, log *slog.Logger) *Server {
	chain := Chain(
		Recovery(log),
		RequestLogger(log),
	)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler:      chain(handler.Routes()),
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
			IdleTimeout:  2 * time.Minute,
		},
		log: log,
	}
}

// Start blocks until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.log.Info("HTTP server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop drains in-flight requests before closing the listener.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("HTTP server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}
