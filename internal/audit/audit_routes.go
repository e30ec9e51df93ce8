package audit

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
	audit := r.Group("/audit")
	audit.Use(middleware.AuthMiddleware(jwtSecret))
	{
		audit.GET("/leaves/:id", middleware.RBACAuthorize(rbacService, "audit", "read"), handler.ListForLeave)
		audit.GET("/workflows/:id", middleware.RBACAuthorize(rbacService, "audit", "read"), handler.ListForWorkflow)
	}
}
