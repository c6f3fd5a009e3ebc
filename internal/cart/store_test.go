package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/retropixel/storefront/internal/domain"
	"github.com/retropixel/storefront/internal/repository/memory"
)

// recordingPersistence remembers every save and can be told to fail
type recordingPersistence struct {
	stored  []domain.CartLine
	hasData bool
	saves   int
	loadErr error
	saveErr error
}

func (p *recordingPersistence) Load(context.Context) ([]domain.CartLine, bool, error) {
	if p.loadErr != nil {
		return nil, false, p.loadErr
	}
	return append([]domain.CartLine(nil), p.stored...), p.hasData, nil
}

func (p *recordingPersistence) Save(_ context.Context, lines []domain.CartLine) error {
	p.saves++
	if p.saveErr != nil {
		return p.saveErr
	}
	p.stored = append([]domain.CartLine(nil), lines...)
	p.hasData = true
	return nil
}

var (
	zelda  = domain.CatalogItem{ID: "game-1", Name: "Zelda", Platform: "Nintendo Switch", Price: 59.99, Image: "zelda.png"}
	tetris = domain.CatalogItem{ID: "game-6", Name: "Tetris", Platform: "Game Boy", Price: 1.99}
)

func TestAdd_SameIDMergesIntoOneLine(t *testing.T) {
	s := NewStore(&recordingPersistence{}, nil)

	for i := 0; i < 4; i++ {
		s.Add(zelda)
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, domain.CartLine{
		ID:       "game-1",
		Name:     "Zelda",
		Image:    "zelda.png",
		Platform: "Nintendo Switch",
		Price:    59.99,
		Quantity: 4,
	}, lines[0])
}

func TestAdd_OpensCart(t *testing.T) {
	s := NewStore(nil, nil)
	require.False(t, s.IsOpen())

	s.Add(tetris)
	assert.True(t, s.IsOpen())

	s.SetOpen(false)
	s.Add(tetris)
	assert.True(t, s.IsOpen())
}

func TestAdd_MissingIDIsDistinctLine(t *testing.T) {
	s := NewStore(nil, nil)

	s.Add(domain.CatalogItem{Name: "Mystery cartridge", Price: 1})
	s.Add(domain.CatalogItem{Name: "Mystery cartridge", Price: 1})

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.NotEmpty(t, lines[0].ID)
	assert.NotEqual(t, lines[0].ID, lines[1].ID)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore(nil, nil)
	s.Add(zelda)
	s.Add(tetris)

	s.UpdateQuantity("game-6", 5)
	assert.Equal(t, 6, s.ItemsCount())

	s.UpdateQuantity("game-6", 2)
	assert.Equal(t, 3, s.ItemsCount(), "quantity is absolute, not incremental")

	s.UpdateQuantity("unknown", 9)
	assert.Equal(t, 3, s.ItemsCount())

	for _, q := range []int{0, -3} {
		s.Add(tetris)
		s.UpdateQuantity("game-6", q)
		for _, l := range s.Lines() {
			assert.NotEqual(t, "game-6", l.ID, "quantity %d must remove the line", q)
		}
	}
}

func TestRemove(t *testing.T) {
	s := NewStore(nil, nil)
	s.Add(zelda)
	s.Add(tetris)

	s.Remove("game-1")
	s.Remove("not-there")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "game-6", lines[0].ID)
}

func TestClear_Idempotent(t *testing.T) {
	p := &recordingPersistence{}
	s := NewStore(p, nil)
	s.Add(zelda)

	s.Clear()
	first := s.Lines()
	s.Clear()

	assert.Empty(t, first)
	assert.Equal(t, first, s.Lines())
	assert.Empty(t, p.stored)
	assert.True(t, p.hasData)
}

func TestTotalsAndCounts(t *testing.T) {
	s := NewStore(nil, nil)
	s.Add(domain.CatalogItem{ID: "a", Price: 0.1})
	s.Add(domain.CatalogItem{ID: "b", Price: 0.2})
	s.UpdateQuantity("a", 2)
	s.UpdateQuantity("b", 3)

	assert.Equal(t, 5, s.ItemsCount(), "units, not distinct lines")
	assert.Len(t, s.Lines(), 2)
	assert.InDelta(t, 0.8, s.Total(), 1e-9)
	assert.Equal(t, 0.8, RoundCents(s.Total()))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 64.97, RoundCents(59.99+4.98))
	assert.Equal(t, 0.0, RoundCents(0))
	assert.Equal(t, 10.01, RoundCents(10.005000001))
}

func TestToggle(t *testing.T) {
	p := &recordingPersistence{}
	s := NewStore(p, nil)

	s.Toggle()
	assert.True(t, s.IsOpen())
	s.Toggle()
	assert.False(t, s.IsOpen())
	assert.Zero(t, p.saves, "visibility is never persisted")
}

func TestEveryMutationSaves(t *testing.T) {
	p := &recordingPersistence{}
	s := NewStore(p, nil)

	s.Add(zelda)
	s.Add(tetris)
	s.UpdateQuantity("game-1", 3)
	s.Remove("game-6")
	s.Clear()

	assert.Equal(t, 5, p.saves)
}

func TestRehydrate(t *testing.T) {
	p := &recordingPersistence{
		hasData: true,
		stored: []domain.CartLine{
			{ID: "game-1", Name: "Zelda", Price: 59.99, Quantity: 1},
			{ID: "game-1", Name: "Zelda", Price: 59.99, Quantity: 2},
			{ID: "game-2", Name: "Mario", Price: 4.99, Quantity: 0},
			{ID: "", Name: "Broken", Price: 1, Quantity: 1},
		},
	}

	s := NewStore(p, nil)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "game-1", lines[0].ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Zero(t, p.saves, "loading does not write back")
}

func TestPersistenceFailuresAreLoggedNotSurfaced(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	p := &recordingPersistence{
		loadErr: errors.New("disk on fire"),
		saveErr: errors.New("disk still on fire"),
	}
	s := NewStore(p, logger)
	assert.Empty(t, s.Lines())

	s.Add(zelda)
	assert.Equal(t, 1, s.ItemsCount())

	assert.Equal(t, 1, logs.FilterMessage("Failed to load stored cart, starting empty").Len())
	assert.Equal(t, 1, logs.FilterMessage("Failed to persist cart").Len())
}

func TestRoundTripThroughKeyValue(t *testing.T) {
	kv := memory.NewStore()
	first := NewStore(NewKeyedPersistence(kv, "cart:abc"), nil)
	first.Add(zelda)
	first.Add(zelda)
	first.Add(tetris)

	second := NewStore(NewKeyedPersistence(kv, "cart:abc"), nil)
	assert.Equal(t, first.Lines(), second.Lines())
	assert.False(t, second.IsOpen(), "visibility starts closed")
}

func TestKeyedPersistence_MalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	require.NoError(t, kv.Set(ctx, "cart:bad", []byte(`{"not":"an array"`)))

	p := NewKeyedPersistence(kv, "cart:bad")
	lines, ok, err := p.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, lines)

	s := NewStore(p, nil)
	assert.Empty(t, s.Lines())
}

func TestKeyedPersistence_SavesJSONArray(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	p := NewKeyedPersistence(kv, "cart:x")

	require.NoError(t, p.Save(ctx, nil))
	raw, ok, err := kv.Get(ctx, "cart:x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))

	require.NoError(t, p.Save(ctx, []domain.CartLine{{ID: "game-6", Name: "Tetris", Platform: "Game Boy", Price: 1.99, Quantity: 2}}))
	raw, _, _ = kv.Get(ctx, "cart:x")
	assert.JSONEq(t,
		`[{"id":"game-6","name":"Tetris","image":"","platform":"Game Boy","price":1.99,"quantity":2}]`,
		string(raw))
}
