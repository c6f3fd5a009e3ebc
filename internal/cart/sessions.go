package cart

import (
	"hash/fnv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/repository"
)

// KeyPrefix namespaces cart entries in the key/value backend
const KeyPrefix = "cart:"

const (
	// DefaultOpenCarts bounds how many open carts are remembered
	DefaultOpenCarts = 10000
	// DefaultOpenTTL is how long an idle cart stays open
	DefaultOpenTTL = 30 * time.Minute

	lockStripes = 64
)

// Sessions hands out the cart of a session. Lines are always read from
// the key/value backend, so changes made by another process (or by
// cart-admin) are seen on the next request. The open flag is not
// persisted; it lives in a bounded LRU and expires when idle.
type Sessions struct {
	kv     repository.KeyValue
	open   *lru.Cache
	ttl    time.Duration
	now    func() time.Time
	locks  [lockStripes]sync.Mutex
	logger *zap.Logger
}

// NewSessions creates a registry over kv with the default bounds
func NewSessions(kv repository.KeyValue, logger *zap.Logger) *Sessions {
	return newSessions(kv, DefaultOpenCarts, DefaultOpenTTL, logger)
}

func newSessions(kv repository.KeyValue, size int, ttl time.Duration, logger *zap.Logger) *Sessions {
	if size < 1 {
		size = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New(size)

	return &Sessions{
		kv:     kv,
		open:   cache,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// Get loads the cart of sessionID from the backend. The returned store is
// meant for one request; call Get again to observe later changes.
func (s *Sessions) Get(sessionID string) Store {
	return newStore(
		NewKeyedPersistence(s.kv, KeyPrefix+sessionID),
		s.logger.With(zap.String("cart_session", sessionID)),
		s.isOpen(sessionID),
		func(open bool) { s.setOpen(sessionID, open) },
	)
}

// With runs fn on the cart of sessionID while holding that session's lock,
// so concurrent requests in this process do not lose each other's writes
func (s *Sessions) With(sessionID string, fn func(Store)) {
	mu := s.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	fn(s.Get(sessionID))
}

// Len reports how many open carts are remembered
func (s *Sessions) Len() int {
	return s.open.Len()
}

// Close forgets every open flag. Lines stay in the backend.
func (s *Sessions) Close() {
	s.open.Purge()
}

func (s *Sessions) isOpen(sessionID string) bool {
	v, ok := s.open.Get(sessionID)
	if !ok {
		return false
	}
	touched, _ := v.(time.Time)
	if s.now().Sub(touched) > s.ttl {
		s.open.Remove(sessionID)
		return false
	}
	// refresh so an active cart stays open
	s.open.Add(sessionID, s.now())
	return true
}

func (s *Sessions) setOpen(sessionID string, open bool) {
	if !open {
		s.open.Remove(sessionID)
		return
	}
	s.open.Add(sessionID, s.now())
}

func (s *Sessions) lockFor(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%lockStripes]
}
