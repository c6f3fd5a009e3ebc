package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStore_AgainstServer(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	s, err := Open(ctx, Options{Addr: addr, TTL: time.Minute}, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	key := "cart:test-" + time.Now().Format("150405.000000")
	defer s.Delete(ctx, key)

	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, key, []byte(`[]`)))
	got, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(got))

	ttl, err := s.client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestOpen_BadURL(t *testing.T) {
	_, err := Open(context.Background(), Options{URL: "not-a-redis-url"}, zap.NewNop())
	assert.ErrorContains(t, err, "parse redis url")
}
