package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reportlab/account-service/internal/api"
	"github.com/reportlab/account-service/internal/infrastructure/config"
	"github.com/reportlab/account-service/internal/infrastructure/db/postgres"
	redisdb "github.com/reportlab/account-service/internal/infrastructure/db/redis"
	"github.com/reportlab/account-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:     cfg.Postgres.DSN,
		MaxOpen: cfg.Postgres.MaxOpen,
		MaxIdle: cfg.Postgres.MaxIdle,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer rdb.Close()

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
