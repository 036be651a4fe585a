package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hygia-health/hygia-api/internal/api"
	"github.com/hygia-health/hygia-api/internal/infrastructure/db/mongo"
	"github.com/hygia-health/hygia-api/internal/infrastructure/db/redis"
	"github.com/hygia-health/hygia-api/internal/infrastructure/memory"
	"github.com/hygia-health/hygia-api/internal/infrastructure/stream"
	"github.com/hygia-health/hygia-api/internal/pkg/config"
	"github.com/hygia-health/hygia-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	credentials, err := memory.NewCredentialDirectory(memory.DefaultSeedUsers())
	if err != nil {
		log.Fatal().Err(err).Msg("credential directory seeding failed")
	}
	patients := memory.NewPatientDirectory(memory.DefaultSeedPatients())

	hub := stream.NewHub(rdb, log)
	hub.Start(ctx)

	e := api.NewRouter(api.Deps{
		Mongo:       db,
		Redis:       rdb,
		Notifier:    hub,
		Credentials: credentials,
		Patients:    patients,
		JWTSecret:   cfg.JWTSecret,
		SessionTTL:  cfg.SessionTTL,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
