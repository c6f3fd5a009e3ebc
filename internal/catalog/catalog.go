package catalog

import (
	"github.com/retropixel/storefront/internal/domain"
	"github.com/retropixel/storefront/pkg/errors"
)

// Option values offered to clients alongside the sentinel "all"
var (
	YearRanges  = []string{"1980-1990", "1990-2000", "2000-2010", "2010-2020", yearSentinel2020Plus}
	PriceRanges = []string{priceFree, "0-10", "10-30", "30-60", price60Plus}
)

// Catalog is the immutable list of purchasable items. Every accessor
// returns copies so callers cannot mutate the shared data.
type Catalog struct {
	items       []domain.CatalogItem
	byID        map[string]int
	soundtracks []domain.Soundtrack
}

// New builds a catalog from items. The slice is copied.
func New(items []domain.CatalogItem) *Catalog {
	c := &Catalog{
		items: make([]domain.CatalogItem, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, item := range items {
		c.items[i] = item.Clone()
		c.byID[item.ID] = i
	}
	return c
}

// Default returns the shop's built-in inventory
func Default() *Catalog {
	return New(defaultItems()).WithSoundtracks(defaultSoundtracks())
}

// WithSoundtracks attaches the featured soundtrack list. The slice is copied.
func (c *Catalog) WithSoundtracks(tracks []domain.Soundtrack) *Catalog {
	c.soundtracks = append([]domain.Soundtrack(nil), tracks...)
	return c
}

// All returns every item, games first
func (c *Catalog) All() []domain.CatalogItem {
	return c.collect(func(domain.CatalogItem) bool { return true })
}

// Games returns the games in catalog order
func (c *Catalog) Games() []domain.CatalogItem {
	return c.collect(func(i domain.CatalogItem) bool { return i.Kind == domain.ItemKindGame })
}

// Consoles returns the consoles in catalog order
func (c *Catalog) Consoles() []domain.CatalogItem {
	return c.collect(func(i domain.CatalogItem) bool { return i.Kind == domain.ItemKindConsole })
}

// Featured returns the first n games
func (c *Catalog) Featured(n int) []domain.CatalogItem {
	games := c.Games()
	if n < 0 {
		n = 0
	}
	if n < len(games) {
		games = games[:n]
	}
	return games
}

// SpecialOffers returns the first n retro games
func (c *Catalog) SpecialOffers(n int) []domain.CatalogItem {
	offers := c.collect(func(i domain.CatalogItem) bool {
		return i.Kind == domain.ItemKindGame && i.Category == domain.CategoryRetro
	})
	if n < 0 {
		n = 0
	}
	if n < len(offers) {
		offers = offers[:n]
	}
	return offers
}

// Soundtracks returns the featured soundtrack list
func (c *Catalog) Soundtracks() []domain.Soundtrack {
	return append([]domain.Soundtrack{}, c.soundtracks...)
}

// ByID looks up a single item
func (c *Catalog) ByID(id string) (domain.CatalogItem, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.CatalogItem{}, &errors.ErrNotFound{Resource: "catalog item", ID: id}
	}
	return c.items[idx].Clone(), nil
}

func (c *Catalog) collect(keep func(domain.CatalogItem) bool) []domain.CatalogItem {
	out := make([]domain.CatalogItem, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

// FilterOptions lists the values a client may pick per criterion
type FilterOptions struct {
	Categories  []domain.Category `json:"categories"`
	Platforms   []string          `json:"platforms"`
	Years       []string          `json:"years"`
	Types       []domain.ItemType `json:"types"`
	PriceRanges []string          `json:"price_ranges"`
	SortKeys    []domain.SortKey  `json:"sort_keys"`
}

// GameFilterOptions returns the option lists for the games listing
func GameFilterOptions() FilterOptions {
	return FilterOptions{
		Categories:  append([]domain.Category(nil), domain.Categories...),
		Platforms:   append([]string(nil), domain.Platforms...),
		Years:       append([]string(nil), YearRanges...),
		Types:       append([]domain.ItemType(nil), domain.GameTypes...),
		PriceRanges: append([]string(nil), PriceRanges...),
		SortKeys:    append([]domain.SortKey(nil), domain.SortKeys...),
	}
}
