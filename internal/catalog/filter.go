package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/retropixel/storefront/internal/domain"
)

// All is the criterion value that disables a filter
const All = "all"

const (
	yearSentinel2020Plus = "2020+"
	priceFree            = "free"
	price60Plus          = "60+"
)

// Criteria is the set of search and filter selections applied to a listing.
// The zero value filters nothing.
type Criteria struct {
	SearchTerm string `form:"q" json:"search_term"`
	Category   string `form:"category" json:"category"`
	Platform   string `form:"platform" json:"platform"`
	Year       string `form:"year" json:"year"`
	Type       string `form:"type" json:"type"`
	PriceRange string `form:"price" json:"price_range"`
}

type predicate func(domain.CatalogItem) bool

// Filter returns the items matching every criterion, in input order.
// Stages run search, category, platform, year, type, price; each narrows the
// previous result. Unrecognized criterion values disable their stage.
// items is never modified.
func Filter(items []domain.CatalogItem, c Criteria) []domain.CatalogItem {
	stages := []predicate{
		searchPredicate(c.SearchTerm),
		categoryPredicate(c.Category),
		platformPredicate(c.Platform),
		yearPredicate(c.Year),
		typePredicate(c.Type),
		pricePredicate(c.PriceRange),
	}

	out := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	for _, keep := range stages {
		if keep == nil {
			continue
		}
		narrowed := out[:0]
		for _, item := range out {
			if keep(item) {
				narrowed = append(narrowed, item)
			}
		}
		out = narrowed
	}
	return out
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == All
}

func searchPredicate(term string) predicate {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(i domain.CatalogItem) bool {
		return strings.Contains(strings.ToLower(i.Name), term) ||
			strings.Contains(strings.ToLower(i.Platform), term)
	}
}

func categoryPredicate(v string) predicate {
	if isAll(v) || !domain.Category(v).IsValid() {
		return nil
	}
	return func(i domain.CatalogItem) bool { return i.Category == domain.Category(v) }
}

func platformPredicate(v string) predicate {
	if isAll(v) || !domain.IsKnownPlatform(v) {
		return nil
	}
	return func(i domain.CatalogItem) bool { return i.Platform == v }
}

func typePredicate(v string) predicate {
	if isAll(v) || !domain.ItemType(v).IsValid() {
		return nil
	}
	return func(i domain.CatalogItem) bool { return i.Type == domain.ItemType(v) }
}

// yearPredicate accepts a literal year, a "start-end" range or "2020+"
func yearPredicate(v string) predicate {
	v = strings.TrimSpace(v)
	if isAll(v) {
		return nil
	}
	if v == yearSentinel2020Plus {
		return func(i domain.CatalogItem) bool { return i.Year >= 2020 }
	}
	if lo, hi, ok := splitRange(v, strconv.Atoi); ok {
		return func(i domain.CatalogItem) bool { return i.Year >= lo && i.Year <= hi }
	}
	if year, err := strconv.Atoi(v); err == nil {
		return func(i domain.CatalogItem) bool { return i.Year == year }
	}
	return nil
}

// pricePredicate accepts "free", "60+" or a "min-max" range
func pricePredicate(v string) predicate {
	v = strings.TrimSpace(v)
	switch {
	case isAll(v):
		return nil
	case v == priceFree:
		return func(i domain.CatalogItem) bool { return i.Price == 0 }
	case v == price60Plus:
		return func(i domain.CatalogItem) bool { return i.Price >= 60 }
	}
	parseFloat := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	if lo, hi, ok := splitRange(v, parseFloat); ok {
		return func(i domain.CatalogItem) bool { return i.Price >= lo && i.Price <= hi }
	}
	return nil
}

func splitRange[T int | float64](v string, parse func(string) (T, error)) (T, T, bool) {
	var zero T
	lo, hi, found := strings.Cut(v, "-")
	if !found {
		return zero, zero, false
	}
	first, err := parse(strings.TrimSpace(lo))
	if err != nil {
		return zero, zero, false
	}
	last, err := parse(strings.TrimSpace(hi))
	if err != nil {
		return zero, zero, false
	}
	if !isFinite(float64(first)) || !isFinite(float64(last)) {
		return zero, zero, false
	}
	return first, last, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
