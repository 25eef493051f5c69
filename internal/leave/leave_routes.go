package leave

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	policy middleware.PolicyService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", middleware.RBACAuthorize(policy, "leave", "read"), h.GetAll)
		leaves.GET("/:id", middleware.RBACAuthorize(policy, "leave", "read"), h.GetByID)
		if redisClient != nil {
			leaves.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(policy, "leave", "create"),
				h.Create,
			)
		} else {
			leaves.POST("", middleware.RBACAuthorize(policy, "leave", "create"), h.Create)
		}
		leaves.POST("/:id/approve", middleware.RBACAuthorize(policy, "leave", "approve"), h.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(policy, "leave", "reject"), h.Reject)
		leaves.DELETE("/:id", middleware.RBACAuthorize(policy, "leave", "delete"), h.Delete)
	}
}
