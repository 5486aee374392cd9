package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers blackout-window routes. All of them are back-office
// operations for admins and coaches.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/unavailabilities")
	group.Use(authMiddleware, staffMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.DELETE("/:id", h.Delete)
	}
}
