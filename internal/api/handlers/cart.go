package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/api/middleware"
	"github.com/retropixel/storefront/internal/cart"
	"github.com/retropixel/storefront/internal/catalog"
	"github.com/retropixel/storefront/internal/domain"
)

// AddToCartRequest adds one unit of a catalog item
type AddToCartRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// UpdateQuantityRequest sets an absolute quantity; zero or less removes
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// SetOpenRequest sets the cart visibility flag
type SetOpenRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// CartResponse is a snapshot of the caller's cart
type CartResponse struct {
	SessionID  string            `json:"session_id"`
	Items      []domain.CartLine `json:"items"`
	IsOpen     bool              `json:"is_open"`
	Total      float64           `json:"total"`
	ItemsCount int               `json:"items_count"`
}

func snapshot(sessionID string, s cart.Store) CartResponse {
	return CartResponse{
		SessionID:  sessionID,
		Items:      s.Lines(),
		IsOpen:     s.IsOpen(),
		Total:      cart.RoundCents(s.Total()),
		ItemsCount: s.ItemsCount(),
	}
}

// withCart resolves the session's store and replies with its snapshot
// after fn has run
func withCart(sessions *cart.Sessions, fn func(c *gin.Context, s cart.Store) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetCartSession(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing cart session"})
			return
		}

		var resp CartResponse
		ok = true
		sessions.With(sessionID, func(s cart.Store) {
			if fn != nil && !fn(c, s) {
				ok = false
				return
			}
			resp = snapshot(sessionID, s)
		})
		if ok {
			c.JSON(http.StatusOK, resp)
		}
	}
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(sessions *cart.Sessions) gin.HandlerFunc {
	return withCart(sessions, nil)
}

// HandleAddToCart handles POST /v1/cart/items
func HandleAddToCart(sessions *cart.Sessions, cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return withCart(sessions, func(c *gin.Context, s cart.Store) bool {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return false
		}

		item, err := cat.ByID(req.ItemID)
		if err != nil {
			respondError(c, err, logger)
			return false
		}

		s.Add(item)
		return true
	})
}

// HandleUpdateCartItem handles PUT /v1/cart/items/:id
func HandleUpdateCartItem(sessions *cart.Sessions) gin.HandlerFunc {
	return withCart(sessions, func(c *gin.Context, s cart.Store) bool {
		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return false
		}

		s.UpdateQuantity(c.Param("id"), *req.Quantity)
		return true
	})
}

// HandleRemoveCartItem handles DELETE /v1/cart/items/:id
func HandleRemoveCartItem(sessions *cart.Sessions) gin.HandlerFunc {
	return withCart(sessions, func(c *gin.Context, s cart.Store) bool {
		s.Remove(c.Param("id"))
		return true
	})
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(sessions *cart.Sessions) gin.HandlerFunc {
	return withCart(sessions, func(c *gin.Context, s cart.Store) bool {
		s.Clear()
		return true
	})
}

// HandleToggleCart handles POST /v1/cart/toggle
func HandleToggleCart(sessions *cart.Sessions) gin.HandlerFunc {
	return withCart(sessions, func(c *gin.Context, s cart.Store) bool {
		s.Toggle()
		return true
	})
}

// HandleSetCartOpen handles PUT /v1/cart/open
func HandleSetCartOpen(sessions *cart.Sessions) gin.HandlerFunc {
	return withCart(sessions, func(c *gin.Context, s cart.Store) bool {
		var req SetOpenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return false
		}

		s.SetOpen(*req.Open)
		return true
	})
}
