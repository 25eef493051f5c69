package attendance

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

	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.RBACAuthorize(policy, "attendance", "read"), h.GetHistory)
		attendances.GET("/summary", middleware.RBACAuthorize(policy, "attendance", "read"), h.GetSummary)
		if redisClient != nil {
			attendances.POST(
				"/clock-in",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(policy, "attendance", "create"),
				h.ClockIn,
			)
			attendances.POST(
				"/clock-out",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(policy, "attendance", "update"),
				h.ClockOut,
			)
		} else {
			attendances.POST("/clock-in", middleware.RBACAuthorize(policy, "attendance", "create"), h.ClockIn)
			attendances.POST("/clock-out", middleware.RBACAuthorize(policy, "attendance", "update"), h.ClockOut)
		}
	}
}
