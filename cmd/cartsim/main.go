package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/utafrali/cartsim/internal/app"
	"github.com/utafrali/cartsim/internal/config"
	"github.com/utafrali/cartsim/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from the environment (plus an optional .env file).
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logger. Diagnostics go to stderr; stdout belongs
	// to the interactive session.
	log := logger.New("cartsim", cfg.LogLevel)
	log.Info("starting cart simulator",
		slog.String("environment", cfg.Environment),
		slog.String("store", cfg.Store),
	)

	// Create the application with all dependencies wired.
	application, err := app.NewApp(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	// Create a context that is canceled on SIGINT or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Run the interactive session. This blocks until the user finishes.
	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("run application: %w", err)
	}

	log.Info("cart simulator stopped")
	return nil
}
