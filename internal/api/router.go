package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/api/handlers"
	"github.com/retropixel/storefront/internal/api/middleware"
	"github.com/retropixel/storefront/internal/auth"
	"github.com/retropixel/storefront/internal/cart"
	"github.com/retropixel/storefront/internal/catalog"
	"github.com/retropixel/storefront/internal/config"
	"github.com/retropixel/storefront/internal/contact"
)

// Services are the collaborators the handlers are built on
type Services struct {
	Catalog *catalog.Catalog
	Carts   *cart.Sessions
	Auth    *auth.Service
	Contact *contact.Service
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svc Services, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	if len(cfg.CORSOrigins) > 0 {
		router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		// Catalog routes (public, read-only)
		v1.GET("/games", handlers.HandleListGames(svc.Catalog))
		v1.GET("/games/filters", handlers.HandleGameFilters())
		v1.GET("/games/featured", handlers.HandleFeaturedGames(svc.Catalog))
		v1.GET("/games/offers", handlers.HandleSpecialOffers(svc.Catalog))
		v1.GET("/consoles", handlers.HandleListConsoles(svc.Catalog))
		v1.GET("/items/:id", handlers.HandleGetItem(svc.Catalog, logger))
		v1.GET("/soundtracks", handlers.HandleListSoundtracks(svc.Catalog))

		// Cart routes (scoped to the caller's cart session)
		cartRoutes := v1.Group("/cart")
		cartRoutes.Use(middleware.CartSession(cfg.IsProduction()))
		{
			cartRoutes.GET("", handlers.HandleGetCart(svc.Carts))
			cartRoutes.DELETE("", handlers.HandleClearCart(svc.Carts))
			cartRoutes.POST("/items", handlers.HandleAddToCart(svc.Carts, svc.Catalog, logger))
			cartRoutes.PUT("/items/:id", handlers.HandleUpdateCartItem(svc.Carts))
			cartRoutes.DELETE("/items/:id", handlers.HandleRemoveCartItem(svc.Carts))
			cartRoutes.POST("/toggle", handlers.HandleToggleCart(svc.Carts))
			cartRoutes.PUT("/open", handlers.HandleSetCartOpen(svc.Carts))
		}

		// Auth routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", handlers.HandleLogin(svc.Auth, logger))
			authRoutes.POST("/register", handlers.HandleRegister(svc.Auth, logger))

			signedIn := authRoutes.Group("")
			signedIn.Use(middleware.AuthMiddleware(svc.Auth, logger))
			{
				signedIn.POST("/logout", handlers.HandleLogout(svc.Auth, logger))
				signedIn.GET("/me", handlers.HandleMe())
			}
		}

		v1.POST("/contact", handlers.HandleContact(svc.Contact, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
