package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/contact"
)

// HandleContact handles POST /v1/contact
func HandleContact(svc *contact.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form contact.Form
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		msg, err := svc.Submit(c.Request.Context(), form)
		if err != nil {
			respondError(c, err, logger)
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"status":      "received",
			"received_at": msg.ReceivedAt,
		})
	}
}
