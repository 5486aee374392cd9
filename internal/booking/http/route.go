package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes. Availability is public so the
// booking page works before login; everything else needs a session.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// Availability lives under the resource path it describes.
	g.GET("/resources/:id/availability", h.Availability)

	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id/cancel", h.Cancel)
	}
}
