package cart

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/domain"
	"github.com/retropixel/storefront/internal/repository/memory"
)

func TestSessions_Isolated(t *testing.T) {
	sessions := NewSessions(memory.NewStore(), zap.NewNop())

	sessions.Get("alice").Add(zelda)

	assert.Equal(t, 1, sessions.Get("alice").ItemsCount())
	assert.Equal(t, 0, sessions.Get("bob").ItemsCount())
}

func TestSessions_OpenFlagAcrossRequests(t *testing.T) {
	sessions := NewSessions(memory.NewStore(), zap.NewNop())

	assert.False(t, sessions.Get("alice").IsOpen())

	sessions.Get("alice").Add(tetris)
	assert.True(t, sessions.Get("alice").IsOpen())
	assert.False(t, sessions.Get("bob").IsOpen())
	assert.Equal(t, 1, sessions.Len())

	sessions.Get("alice").Toggle()
	assert.False(t, sessions.Get("alice").IsOpen())
	assert.Zero(t, sessions.Len(), "closed carts are not remembered")

	sessions.Get("alice").SetOpen(true)
	assert.True(t, sessions.Get("alice").IsOpen())
}

func TestSessions_ReadsDoNotGrowMemory(t *testing.T) {
	sessions := NewSessions(memory.NewStore(), zap.NewNop())

	for i := 0; i < 100000; i++ {
		sessions.Get(uuid.NewString())
	}

	assert.Zero(t, sessions.Len())
}

func TestSessions_OpenCartsAreBounded(t *testing.T) {
	sessions := newSessions(memory.NewStore(), 8, time.Hour, zap.NewNop())

	var last string
	for i := 0; i < 100; i++ {
		last = uuid.NewString()
		sessions.Get(last).Add(tetris)
	}

	assert.Equal(t, 8, sessions.Len())
	assert.True(t, sessions.Get(last).IsOpen())
}

func TestSessions_OpenFlagExpires(t *testing.T) {
	sessions := newSessions(memory.NewStore(), 8, time.Minute, zap.NewNop())
	sessions.Get("alice").Add(tetris)

	sessions.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	s := sessions.Get("alice")
	assert.False(t, s.IsOpen())
	assert.Equal(t, 1, s.ItemsCount(), "lines outlive the open flag")
	assert.Zero(t, sessions.Len())
}

func TestSessions_SeesBackendChanges(t *testing.T) {
	kv := memory.NewStore()
	sessions := NewSessions(kv, zap.NewNop())
	ctx := context.Background()

	sessions.Get("alice").Add(zelda)
	sessions.Get("alice").Add(zelda)

	require.NoError(t, kv.Delete(ctx, KeyPrefix+"alice"))
	assert.Zero(t, sessions.Get("alice").ItemsCount())

	sessions.Get("alice").Add(tetris)

	raw, ok, err := kv.Get(ctx, KeyPrefix+"alice")
	require.NoError(t, err)
	require.True(t, ok)

	var stored []domain.CartLine
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, tetris.ID, stored[0].ID)
	assert.Equal(t, 1, stored[0].Quantity)
}

func TestSessions_SharedBackend(t *testing.T) {
	kv := memory.NewStore()
	first := NewSessions(kv, zap.NewNop())
	second := NewSessions(kv, zap.NewNop())

	first.Get("alice").Add(zelda)
	second.Get("alice").Add(tetris)

	assert.Equal(t, 2, first.Get("alice").ItemsCount())
	assert.Len(t, second.Get("alice").Lines(), 2)
}

func TestSessions_WithSerializesWriters(t *testing.T) {
	sessions := NewSessions(memory.NewStore(), zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sessions.With("alice", func(s Store) { s.Add(tetris) })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, sessions.Get("alice").ItemsCount())
}

func TestSessions_CloseKeepsLines(t *testing.T) {
	kv := memory.NewStore()
	sessions := NewSessions(kv, zap.NewNop())
	sessions.Get("alice").Add(tetris)
	sessions.Get("alice").Add(tetris)

	sessions.Close()
	assert.Zero(t, sessions.Len())

	restored := sessions.Get("alice")
	assert.Equal(t, 2, restored.ItemsCount())
	assert.False(t, restored.IsOpen())
}
