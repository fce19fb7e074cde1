// Command server runs the business backend HTTP API.
//
// @title           Business Backend API
// @version         1.0
// @description     User registration, authentication, and role-gated CRUD endpoints.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bizhub/business-backend/internal/api"
	"github.com/bizhub/business-backend/internal/core/auth"
	"github.com/bizhub/business-backend/internal/infrastructure/db/postgres"
	"github.com/bizhub/business-backend/internal/pkg/config"
	"github.com/bizhub/business-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; envconfig's message names the missing
		// variable (JWT_SECRET being the usual culprit).
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, auth.TokenTTL)
	e := api.NewRouter(pool, issuer, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
