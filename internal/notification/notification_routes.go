package notification

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Notifications are always scoped to the authenticated subject, so no rbac
// gate beyond authentication.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.GetMine)
		notifications.POST("/:id/read", h.MarkRead)
	}
}
