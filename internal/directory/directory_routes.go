package directory

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, policy middleware.PolicyService) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id", middleware.RBACAuthorize(policy, "employees", "read"), h.GetEmployee)
		employees.GET("/:id/supervisor", middleware.RBACAuthorize(policy, "employees", "read"), h.GetSupervisor)
	}

	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("/:id/employees", middleware.RBACAuthorize(policy, "departments", "read"), h.ListByDepartment)
	}
}
