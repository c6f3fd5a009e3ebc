package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CartSessionHeader carries the cart session id for non-browser clients
	CartSessionHeader = "X-Cart-Session"
	cartSessionCookie = "cart_session"
	cartSessionKey    = "cart_session"
	cartSessionMaxAge = 60 * 60 * 24 * 30
)

// CartSession resolves the caller's cart session id from the header or
// cookie, issuing a new one when neither holds a valid UUID
func CartSession(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CartSessionHeader)
		if _, err := uuid.Parse(id); err != nil {
			id, _ = c.Cookie(cartSessionCookie)
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cartSessionCookie, id, cartSessionMaxAge, "/", "", secureCookie, true)
		c.Header(CartSessionHeader, id)
		c.Set(cartSessionKey, id)
		c.Next()
	}
}

// GetCartSession returns the id set by CartSession
func GetCartSession(c *gin.Context) (string, bool) {
	v, ok := c.Get(cartSessionKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
