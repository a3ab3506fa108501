package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitlink/trainer-directory/internal/api"
	"github.com/fitlink/trainer-directory/internal/infrastructure/config"
	mongodb "github.com/fitlink/trainer-directory/internal/infrastructure/db/mongo"
	redisdb "github.com/fitlink/trainer-directory/internal/infrastructure/db/redis"
	"github.com/fitlink/trainer-directory/internal/infrastructure/storage"
	"github.com/fitlink/trainer-directory/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// Unique indexes carry the duplicate-email and duplicate-account
	// invariants; creating them is part of startup, not a migration step.
	if err := mongodb.NewTrainerRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("trainer indexes failed")
	}
	if err := mongodb.NewBlacklistRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("blacklist indexes failed")
	}
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	images, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir unavailable")
	}

	e := api.NewRouter(db, rdb, images, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("trainer directory API listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
