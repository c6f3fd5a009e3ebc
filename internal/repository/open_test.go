package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/config"
)

// exerciseKeyValue runs the behaviour every backend must share
func exerciseKeyValue(t *testing.T, kv KeyValue) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "cart:missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "cart:a", []byte(`[{"id":"game-1","quantity":1}]`)))
	require.NoError(t, kv.Set(ctx, "cart:a", []byte(`[{"id":"game-1","quantity":2}]`)))

	got, ok, err := kv.Get(ctx, "cart:a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"game-1","quantity":2}]`, string(got))

	require.NoError(t, kv.Delete(ctx, "cart:a"))
	require.NoError(t, kv.Delete(ctx, "cart:a"))
	_, ok, err = kv.Get(ctx, "cart:a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.StorageConfig
	}{
		{"memory", config.StorageConfig{Backend: config.StorageMemory}},
		{"file", config.StorageConfig{Backend: config.StorageFile, FileDir: filepath.Join(dir, "carts")}},
		{"sqlite", config.StorageConfig{Backend: config.StorageSQLite, SQLitePath: filepath.Join(dir, "carts.db")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := Open(context.Background(), &config.Config{Storage: tt.cfg}, zap.NewNop())
			require.NoError(t, err)
			defer kv.Close()

			exerciseKeyValue(t, kv)
		})
	}
}

func TestOpen_SQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Storage: config.StorageConfig{
		Backend:    config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "carts.db"),
	}}

	kv, err := Open(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "cart:s", []byte(`[]`)))
	require.NoError(t, kv.Close())

	kv, err = Open(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer kv.Close()

	got, ok, err := kv.Get(ctx, "cart:s")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got))
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Backend: "tape"}}, zap.NewNop())
	assert.ErrorContains(t, err, "tape")
}
