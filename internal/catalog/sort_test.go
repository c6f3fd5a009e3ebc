package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retropixel/storefront/internal/domain"
)

func prices(items []domain.CatalogItem) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = item.Price
	}
	return out
}

func TestSort_Price(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "a", Price: 30},
		{ID: "b", Price: 10},
		{ID: "c", Price: 20},
	}

	assert.Equal(t, []float64{10, 20, 30}, prices(Sort(items, domain.SortByPriceLow)))
	assert.Equal(t, []float64{30, 20, 10}, prices(Sort(items, domain.SortByPriceHigh)))
	assert.Equal(t, []float64{30, 10, 20}, prices(items), "input must keep its order")
}

func TestSort_Descending(t *testing.T) {
	games := Default().Games()

	assert.Equal(t,
		[]string{"game-5", "game-3", "game-1", "game-6", "game-2", "game-4"},
		ids(Sort(games, domain.SortByYear)))
	assert.Equal(t,
		[]string{"game-4", "game-6", "game-2", "game-1", "game-5", "game-3"},
		ids(Sort(games, domain.SortByPopularity)))
	assert.Equal(t,
		[]string{"game-2", "game-1", "game-6", "game-4", "game-5", "game-3"},
		ids(Sort(games, domain.SortByRating)))
}

func TestSort_Name(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "t", Name: "Tetris"},
		{ID: "p", Name: "Pac-Man"},
		{ID: "c", Name: "Cyberpunk 2077"},
		{ID: "z", Name: "the Legend of Zelda"},
	}

	assert.Equal(t, []string{"c", "p", "t", "z"}, ids(Sort(items, domain.SortByName)))
}

func TestSort_ReplacesPreviousOrder(t *testing.T) {
	filtered := Filter(Default().Games(), Criteria{Category: "retro"})

	byPrice := Sort(filtered, domain.SortByPriceHigh)
	byName := Sort(byPrice, domain.SortByName)

	assert.Equal(t, ids(Sort(filtered, domain.SortByName)), ids(byName))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	games := Default().Games()
	assert.Equal(t, ids(games), ids(Sort(games, domain.SortKey("random"))))
}

func TestSort_Stable(t *testing.T) {
	items := []domain.CatalogItem{
		{ID: "first", Price: 5},
		{ID: "second", Price: 5},
		{ID: "third", Price: 1},
	}
	assert.Equal(t, []string{"third", "first", "second"}, ids(Sort(items, domain.SortByPriceLow)))
}
