package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/retropixel/storefront/internal/api"
	"github.com/retropixel/storefront/internal/auth"
	"github.com/retropixel/storefront/internal/cart"
	"github.com/retropixel/storefront/internal/catalog"
	"github.com/retropixel/storefront/internal/config"
	"github.com/retropixel/storefront/internal/contact"
	"github.com/retropixel/storefront/internal/repository"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Cart storage backend
	kv, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open cart storage: %w", err)
	}
	defer kv.Close()

	carts := cart.NewSessions(kv, logger)
	defer carts.Close()

	verifier, err := auth.NewStubVerifier()
	if err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}
	authService := auth.NewService(verifier, cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, logger)

	var relay contact.Relay = contact.NewLogRelay(logger)
	if cfg.Contact.WebhookURL != "" {
		relay = contact.NewWebhookRelay(cfg.Contact.WebhookURL, logger)
	}

	router := api.NewRouter(cfg, api.Services{
		Catalog: catalog.Default(),
		Carts:   carts,
		Auth:    authService,
		Contact: contact.NewService(relay, logger),
	}, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("storage", cfg.Storage.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
