package cart

import (
	"context"
	"encoding/json"

	"github.com/retropixel/storefront/internal/domain"
	"github.com/retropixel/storefront/internal/repository"
)

// Persistence mirrors a cart's lines to durable storage
type Persistence interface {
	// Load returns ok=false when there is no usable stored cart
	Load(ctx context.Context) (lines []domain.CartLine, ok bool, err error)
	Save(ctx context.Context, lines []domain.CartLine) error
}

type keyedPersistence struct {
	kv  repository.KeyValue
	key string
}

// NewKeyedPersistence stores the cart as a JSON array under a single key
func NewKeyedPersistence(kv repository.KeyValue, key string) Persistence {
	return &keyedPersistence{kv: kv, key: key}
}

// Load maps malformed content to "nothing stored"; only backend failures
// are returned as errors
func (p *keyedPersistence) Load(ctx context.Context) ([]domain.CartLine, bool, error) {
	raw, ok, err := p.kv.Get(ctx, p.key)
	if err != nil || !ok {
		return nil, false, err
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, false, nil
	}
	return lines, true, nil
}

func (p *keyedPersistence) Save(ctx context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return p.kv.Set(ctx, p.key, raw)
}

// nopPersistence keeps nothing; used when a store is built without a port
type nopPersistence struct{}

func (nopPersistence) Load(context.Context) ([]domain.CartLine, bool, error) { return nil, false, nil }
func (nopPersistence) Save(context.Context, []domain.CartLine) error         { return nil }
