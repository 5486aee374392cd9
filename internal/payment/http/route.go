package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the gateway webhook endpoint. It is deliberately
// outside the auth middleware: signature verification in the handler is the
// only acceptable credential for machine-to-machine deliveries.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/payments/webhook", h.Webhook)
}
