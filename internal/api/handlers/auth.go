package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/api/middleware"
	"github.com/retropixel/storefront/internal/auth"
)

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin handles POST /v1/auth/login
func HandleLogin(svc *auth.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		session, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err, logger)
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

// HandleRegister handles POST /v1/auth/register
func HandleRegister(svc *auth.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		session, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, logger)
			return
		}

		c.JSON(http.StatusCreated, session)
	}
}

// HandleLogout handles POST /v1/auth/logout
func HandleLogout(svc *auth.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := middleware.GetTokenFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := svc.Logout(token); err != nil {
			respondError(c, err, logger)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// HandleMe handles GET /v1/auth/me
func HandleMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
