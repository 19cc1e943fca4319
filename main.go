package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneyflow-app/backend/internal/auth"
	"github.com/moneyflow-app/backend/internal/config"
	v1 "github.com/moneyflow-app/backend/internal/controllers/v1"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/moneyflow-app/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// @title						MoneyFlow
// @version					0.0.0
// @description				The backend for MoneyFlow, a personal finance tracker with recurring transactions.
// @license.name				MIT
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Bearer token returned by user registration and login, prefixed with "Bearer "
func main() {
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Loggers from contexts without a request logger fall back to the global one
	zerolog.DefaultContextLogger = &log.Logger

	err := cfg.Validate()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	db, err := connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Database")
	}

	secret := cfg.JWTSecret
	if secret == "" {
		log.Warn().Msg("JWT_SECRET is not set, tokens are invalidated on restart")
		secret = uuid.NewString()
	}

	r, teardown, err := router.Config(cfg.URL(), router.Options{
		AllowOrigins: cfg.CORSAllowOrigins,
		EnablePprof:  cfg.EnablePprof,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Router")
	}
	defer teardown()

	co := v1.NewController(db, auth.NewIssuer(secret, cfg.JWTExpiresIn))
	router.AttachRoutes(co, r.Group("/"), router.Options{EnablePprof: cfg.EnablePprof})

	err = serve(r, cfg.Port)
	if err != nil {
		log.Error().Err(err).Msg("Server")
	}

	sqlDB, err := db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("Shutdown complete")
}

// connect opens PostgreSQL if a database URL is configured and SQLite otherwise.
func connect(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		log.Info().Msg("Using PostgreSQL")
		return models.ConnectPostgres(cfg.DatabaseURL)
	}

	log.Info().Str("path", cfg.SQLitePath).Msg("Using SQLite")
	return models.Connect(cfg.SQLitePath)
}

// serve runs the HTTP server until SIGINT or SIGTERM is received
// and then shuts it down gracefully.
func serve(handler http.Handler, port string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
