package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passvault/internal/config"
	"github.com/vaultpass/passvault/internal/crypto"
	"github.com/vaultpass/passvault/internal/generator"
	"github.com/vaultpass/passvault/internal/handler"
	"github.com/vaultpass/passvault/internal/metrics"
	"github.com/vaultpass/passvault/internal/repository"
	"github.com/vaultpass/passvault/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	sealKey, err := crypto.ParseSealKey(cfg.SealKey)
	if err != nil {
		slog.Error("invalid SEAL_KEY", "error", err)
		os.Exit(1)
	}
	sealer, err := crypto.NewSealer(sealKey)
	if err != nil {
		slog.Error("creating sealer", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)

	rt := routes{
		cfg:       cfg,
		metrics:   m,
		generator: handler.NewGeneratorHandler(service.NewGeneratorService(generator.CryptoSource{}, m)),
		tokens:    tokens,
	}

	// Auth and credential routes need the database; without it only the
	// generator is served.
	db, err := openDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, auth and credential routes disabled", "error", err)
	} else {
		defer db.Close()

		authService := service.NewAuthService(
			repository.NewUserRepository(db),
			crypto.NewHasher(crypto.DefaultHashParams()),
			tokens,
		)
		credService := service.NewCredentialService(repository.NewCredentialRepository(db), sealer)

		rt.auth = handler.NewAuthHandler(authService)
		rt.credentials = handler.NewCredentialHandler(credService)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           rt.handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func openDB(dsn string) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := repository.NewDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
