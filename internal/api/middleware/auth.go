package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/auth"
	"github.com/retropixel/storefront/internal/domain"
)

const (
	userKey  = "user"
	tokenKey = "token"
)

// BearerToken extracts the token from an "Authorization: Bearer" header
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token
func AuthMiddleware(svc *auth.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		claims, err := svc.ParseToken(token)
		if err != nil {
			logger.Debug("Rejected bearer token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(userKey, auth.UserFromClaims(claims))
		c.Set(tokenKey, token)
		c.Next()
	}
}

// GetUserFromContext returns the user set by AuthMiddleware
func GetUserFromContext(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)
	return user, ok
}

// GetTokenFromContext returns the raw bearer token accepted by AuthMiddleware
func GetTokenFromContext(c *gin.Context) (string, bool) {
	return c.GetString(tokenKey), c.GetString(tokenKey) != ""
}
