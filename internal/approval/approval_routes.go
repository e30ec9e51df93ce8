package approval

import (
	"go-leave-approval/internal/middleware"
	"go-leave-approval/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	jwtSecret string,
) {
	approvals := r.Group("/approvals")
	approvals.Use(middleware.AuthMiddleware(jwtSecret))
	{
		approvals.POST("/preview", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.Preview)
	}
}
