package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/diegoclair/morning-club-bot/internal/app"
	"github.com/diegoclair/morning-club-bot/internal/config"
	"github.com/diegoclair/morning-club-bot/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	l := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, l)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to initialize")
	}

	if err := a.Run(ctx); err != nil {
		l.Error().Err(err).Msg("bot stopped")
		os.Exit(1)
	}
	l.Info().Msg("bye")
}
