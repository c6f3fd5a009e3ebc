package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCartStore_AgainstServer(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)

	store, err := NewStore(ctx, db, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	key := "cart:postgres-test"
	defer store.Delete(ctx, key)

	require.NoError(t, store.Set(ctx, key, []byte(`[{"id":"game-2","quantity":1}]`)))
	require.NoError(t, store.Set(ctx, key, []byte(`[{"id":"game-2","quantity":4}]`)))

	got, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"game-2","quantity":4}]`, string(got))
}
