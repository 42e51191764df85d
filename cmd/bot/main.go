package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/knife-media/watchcat/internal/app"
	"github.com/knife-media/watchcat/internal/config"
	loginfra "github.com/knife-media/watchcat/internal/infra/logger"
)

func main() {
	// A missing .env is fine, real deployments use plain environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := loginfra.New(cfg.LogLevel)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("create app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watchcat starting")
	if err := application.Run(ctx); err != nil {
		logger.Error("watchcat stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("watchcat stopped")
}
