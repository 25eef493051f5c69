package rbac

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, policy middleware.PolicyService) {
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", middleware.RBACAuthorize(policy, "roles", "read"), h.ListRoles)
		roles.GET("/:id", middleware.RBACAuthorize(policy, "roles", "read"), h.GetRole)
		roles.POST("", middleware.RBACAuthorize(policy, "roles", "create"), h.CreateRole)
		roles.PUT("/:id", middleware.RBACAuthorize(policy, "roles", "update"), h.UpdateRole)
		roles.DELETE("/:id", middleware.RBACAuthorize(policy, "roles", "delete"), h.DeleteRole)
	}

	permissions := r.Group("/permissions")
	permissions.Use(middleware.AuthMiddleware())
	{
		permissions.GET("", middleware.RBACAuthorize(policy, "permissions", "read"), h.ListPermissions)
	}
}
