package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/config"
	"github.com/retropixel/storefront/internal/repository/file"
	"github.com/retropixel/storefront/internal/repository/memory"
	"github.com/retropixel/storefront/internal/repository/postgres"
	"github.com/retropixel/storefront/internal/repository/redis"
	"github.com/retropixel/storefront/internal/repository/sqlite"
)

// Open builds the key/value backend selected by cfg.Storage.Backend
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (KeyValue, error) {
	logger = logger.With(zap.String("backend", cfg.Storage.Backend))

	switch cfg.Storage.Backend {
	case config.StorageMemory, "":
		logger.Warn("Carts are kept in memory and will not survive a restart")
		return memory.NewStore(), nil

	case config.StorageFile:
		store, err := file.NewStore(cfg.Storage.FileDir, logger)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.StoragePostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		store, err := postgres.NewStore(ctx, db, logger)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil

	case config.StorageRedis:
		store, err := redis.Open(ctx, redis.Options{
			URL:      cfg.Redis.URL,
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			TTL:      cfg.Storage.CartTTL,
		}, logger)
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown cart storage backend %q", cfg.Storage.Backend)
	}
}
