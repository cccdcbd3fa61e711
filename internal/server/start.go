package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start serves on addr until ctx is done, then shuts the server down
// gracefully and releases the application services. It returns early with
// the listener error when the server cannot start.
func (s *Server) Start(ctx context.Context, addr string) error {
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr, "env", s.App.Config.Env)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var startErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutting down server")
	case err, ok := <-serveErr:
		if ok {
			startErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.E.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := s.App.Close(); err != nil {
		slog.Error("Failed to release application services", "error", err)
	}
	return startErr
}
