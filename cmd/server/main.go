package main

import (
	"context"
	"os"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shotfolio/shotfolio-api/internal/router"
	"github.com/shotfolio/shotfolio-api/pkg/config"
	"github.com/shotfolio/shotfolio-api/pkg/firebase"
	"github.com/shotfolio/shotfolio-api/pkg/validators"
)

func main() {
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	db, err := config.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer db.CloseDB(logger)

	// Firebase sign-in is optional; without credentials the endpoint
	// reports itself unconfigured.
	var firebaseAuthClient *firebaseauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		app, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			logger.Warn().Err(err).Msg("firebase init failed, continuing without firebase sign-in")
		} else {
			firebaseAuthClient = app.AuthClient
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e, logger)
	router.SetupRoutes(e, db.Database, firebaseAuthClient, cfg, logger)

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
