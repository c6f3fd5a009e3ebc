package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS cart_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

type cartStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStore creates a key/value store over the cart_store table, creating
// the table if it does not exist
func NewStore(ctx context.Context, db *sql.DB, logger *zap.Logger) (*cartStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create cart_store table: %w", err)
	}
	return &cartStore{
		db:     db,
		logger: logger,
	}, nil
}

func (r *cartStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM cart_store
		WHERE key = $1
	`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Failed to get stored value", zap.String("key", key), zap.Error(err))
		return nil, false, err
	}

	return value, true, nil
}

// Set upserts the value. Postgres rejects invalid JSON for a JSONB column,
// so callers must store JSON documents.
func (r *cartStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO cart_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, string(value), time.Now())
	if err != nil {
		r.logger.Error("Failed to store value", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (r *cartStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM cart_store WHERE key = $1`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		r.logger.Error("Failed to delete stored value", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (r *cartStore) Close() error {
	return r.db.Close()
}
