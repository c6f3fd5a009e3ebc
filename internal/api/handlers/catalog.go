package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/catalog"
	"github.com/retropixel/storefront/internal/domain"
	"github.com/retropixel/storefront/internal/sanitize"
)

const (
	featuredCount = 4
	offersCount   = 3
)

// ListResponse is a filtered, sorted catalog listing
type ListResponse struct {
	Items []domain.CatalogItem `json:"items"`
	Count int                  `json:"count"`
	Total int                  `json:"total"`
}

func listItems(c *gin.Context, source []domain.CatalogItem) {
	var criteria catalog.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	criteria.SearchTerm = sanitize.Input(criteria.SearchTerm, sanitize.DefaultMaxLength)

	items := catalog.Filter(source, criteria)
	if sortKey := domain.SortKey(c.Query("sort")); sortKey != "" {
		items = catalog.Sort(items, sortKey)
	}

	c.JSON(http.StatusOK, ListResponse{
		Items: items,
		Count: len(items),
		Total: len(source),
	})
}

// HandleListGames handles GET /v1/games
func HandleListGames(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		listItems(c, cat.Games())
	}
}

// HandleListConsoles handles GET /v1/consoles
func HandleListConsoles(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		listItems(c, cat.Consoles())
	}
}

// HandleGameFilters handles GET /v1/games/filters
func HandleGameFilters() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.GameFilterOptions())
	}
}

// HandleFeaturedGames handles GET /v1/games/featured
func HandleFeaturedGames(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cat.Featured(featuredCount)
		c.JSON(http.StatusOK, ListResponse{Items: items, Count: len(items), Total: len(cat.Games())})
	}
}

// HandleSpecialOffers handles GET /v1/games/offers
func HandleSpecialOffers(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cat.SpecialOffers(offersCount)
		c.JSON(http.StatusOK, ListResponse{Items: items, Count: len(items), Total: len(cat.Games())})
	}
}

// HandleListSoundtracks handles GET /v1/soundtracks
func HandleListSoundtracks(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		tracks := cat.Soundtracks()
		c.JSON(http.StatusOK, gin.H{"items": tracks, "count": len(tracks)})
	}
}

// HandleGetItem handles GET /v1/items/:id
func HandleGetItem(cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := cat.ByID(c.Param("id"))
		if err != nil {
			respondError(c, err, logger)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
