package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/retropixel/storefront/internal/domain"
)

// Sort returns a reordered copy of items. Ties keep their input order.
// An unknown key returns the copy in input order.
func Sort(items []domain.CatalogItem, key domain.SortKey) []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}

	var less func(a, b domain.CatalogItem) bool
	switch key {
	case domain.SortByName:
		// Collator keeps per-call buffers, so build one per sort
		col := collate.New(language.English)
		less = func(a, b domain.CatalogItem) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case domain.SortByPriceLow:
		less = func(a, b domain.CatalogItem) bool { return a.Price < b.Price }
	case domain.SortByPriceHigh:
		less = func(a, b domain.CatalogItem) bool { return a.Price > b.Price }
	case domain.SortByYear:
		less = func(a, b domain.CatalogItem) bool { return a.Year > b.Year }
	case domain.SortByPopularity:
		less = func(a, b domain.CatalogItem) bool { return a.Popularity > b.Popularity }
	case domain.SortByRating:
		less = func(a, b domain.CatalogItem) bool { return a.Rating > b.Rating }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
