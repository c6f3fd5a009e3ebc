package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/retropixel/storefront/pkg/errors"
)

// respondError maps typed errors to status codes; anything else is a 500
func respondError(c *gin.Context, err error, logger *zap.Logger) {
	var (
		notFound     *apperrors.ErrNotFound
		validation   *apperrors.ErrValidation
		unauthorized *apperrors.ErrUnauthorized
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": validation.Fields,
		})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": unauthorized.Error()})
	default:
		logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
