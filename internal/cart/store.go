package cart

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/domain"
)

// persistTimeout bounds a single load or save against the backend
const persistTimeout = 5 * time.Second

// Store is the authoritative line set of one shopper's cart. Every
// operation is total: persistence failures are logged, never returned.
type Store interface {
	Lines() []domain.CartLine
	IsOpen() bool

	Add(item domain.CatalogItem)
	Remove(id string)
	UpdateQuantity(id string, quantity int)
	Clear()

	Total() float64
	ItemsCount() int

	Toggle()
	SetOpen(open bool)
}

type store struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	open    bool
	onOpen  func(bool)
	persist Persistence
	logger  *zap.Logger
}

// NewStore creates a cart and rehydrates it once from p. A missing,
// malformed or unreadable stored cart starts empty.
func NewStore(p Persistence, logger *zap.Logger) Store {
	return newStore(p, logger, false, nil)
}

// newStore is NewStore with an initial open flag and a hook that is told
// about every change to it
func newStore(p Persistence, logger *zap.Logger, open bool, onOpen func(bool)) *store {
	if p == nil {
		p = nopPersistence{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &store{open: open, onOpen: onOpen, persist: p, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	lines, ok, err := p.Load(ctx)
	if err != nil {
		logger.Warn("Failed to load stored cart, starting empty", zap.Error(err))
	}
	if ok {
		s.lines = normalize(lines)
	}
	return s
}

// normalize drops non-positive quantities and merges duplicate ids so
// rehydrated data satisfies the same invariants as live data
func normalize(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 || l.ID == "" {
			continue
		}
		if i, seen := index[l.ID]; seen {
			out[i].Quantity += l.Quantity
			continue
		}
		index[l.ID] = len(out)
		out = append(out, l)
	}
	return out
}

func (s *store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartLine{}, s.lines...)
}

func (s *store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Add increments an existing line or appends a new one copied from item,
// then opens the cart. An item without an id gets a fresh one, making it a
// distinct line.
func (s *store) Add(item domain.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := item.ID
	if id == "" {
		id = uuid.NewString()
	}

	if i := s.indexOf(id); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, domain.CartLine{
			ID:       id,
			Name:     item.Name,
			Image:    item.Image,
			Platform: item.Platform,
			Price:    item.Price,
			Quantity: 1,
		})
	}
	s.setOpenLocked(true)
	s.save()
}

func (s *store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
}

// UpdateQuantity sets an absolute quantity; quantity <= 0 removes the line
func (s *store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(id)
		return
	}
	if i := s.indexOf(id); i >= 0 {
		s.lines[i].Quantity = quantity
	}
	s.save()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.save()
}

// Total is the unrounded sum of price*quantity. Use RoundCents for display.
func (s *store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemsCount is the number of units, not the number of lines
func (s *store) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

func (s *store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOpenLocked(!s.open)
}

func (s *store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOpenLocked(open)
}

// remove and save expect s.mu to be held
func (s *store) remove(id string) {
	if i := s.indexOf(id); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
	s.save()
}

func (s *store) setOpenLocked(open bool) {
	s.open = open
	if s.onOpen != nil {
		s.onOpen(open)
	}
}

func (s *store) indexOf(id string) int {
	for i, l := range s.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (s *store) save() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.persist.Save(ctx, s.lines); err != nil {
		s.logger.Warn("Failed to persist cart", zap.Int("lines", len(s.lines)), zap.Error(err))
	}
}

// RoundCents rounds an amount to two decimals for display
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
