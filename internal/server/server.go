package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mpetrov/storefront-server/internal/logger"
)

// HTTP wraps the standard http.Server with listener setup and graceful
// shutdown.
type HTTP struct {
	server   *http.Server
	listener Listener
	addr     string
	logger   *logger.Logger
}

// NewHTTP creates a new HTTP server serving handler on addr through the
// given listener.
func NewHTTP(addr string, handler http.Handler, listener Listener, logger *logger.Logger) *HTTP {
	return &HTTP{
		server:   &http.Server{Handler: handler},
		listener: listener,
		addr:     addr,
		logger:   logger,
	}
}

// Start binds the address and serves until the server is stopped.
// It blocks; http.ErrServerClosed is swallowed so that a graceful stop
// returns nil.
func (s *HTTP) Start() error {
	ln, err := s.listener.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.logger.Info("HTTP server: listening", "addr", ln.Addr().String())

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// until ctx is done.
func (s *HTTP) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server: shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// Address returns the configured listen address.
func (s *HTTP) Address() string {
	return s.addr
}
