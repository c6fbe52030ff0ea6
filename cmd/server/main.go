package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/openvillage/village-api/internal/api"
	"github.com/openvillage/village-api/internal/core/service"
	"github.com/openvillage/village-api/internal/infrastructure/config"
	"github.com/openvillage/village-api/internal/infrastructure/db/postgres"
	"github.com/openvillage/village-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}

	authRepo := postgres.NewAuthRepository(db)
	villageRepo := postgres.NewVillageRepository(db)

	e := api.NewRouter(api.Deps{
		AuthService:    service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL),
		VillageService: service.NewVillageService(villageRepo, log),
		DB:             db,
		JWTSecret:      cfg.JWTSecret,
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
