package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/divyank00/portfolio/internal/app"
	"github.com/divyank00/portfolio/internal/config"
	"github.com/divyank00/portfolio/internal/logging"
	"github.com/divyank00/portfolio/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	s := server.New(a)
	s.RegisterRoutes()
	if err := s.Start(ctx, cfg.Addr); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
