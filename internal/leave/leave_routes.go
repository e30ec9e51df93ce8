package leave

import (
	"go-leave-approval/internal/middleware"
	"go-leave-approval/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	jwtSecret string,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(jwtSecret))
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetAll)
		leaves.GET("/approvals/pending", handler.PendingApprovals)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetById)
		leaves.GET("/:id/steps", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetSteps)

		leaves.POST("",
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		leaves.POST("/:id/cancel", middleware.Idempotency(rdb), handler.Cancel)

		actions := leaves.Group("/:id")
		actions.Use(middleware.RateLimitByUser(2, 10), middleware.Idempotency(rdb))
		{
			actions.POST("/approve", handler.Approve)
			actions.POST("/reject", handler.Reject)
			actions.POST("/delegate", handler.Delegate)
			actions.POST("/skip", handler.Skip)
		}
	}
}
