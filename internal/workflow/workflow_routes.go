package workflow

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
	workflows := r.Group("/workflows")
	workflows.Use(middleware.AuthMiddleware(jwtSecret))
	{
		workflows.GET("", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.List)
		workflows.GET("/:id", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.GetByID)
		workflows.GET("/:id/versions", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.ListVersions)
		workflows.POST("", middleware.RBACAuthorize(rbacService, "workflow", "manage"), handler.Create)
		workflows.POST("/:id/versions", middleware.RBACAuthorize(rbacService, "workflow", "manage"), handler.CreateVersion)
		workflows.POST("/:id/activate", middleware.RBACAuthorize(rbacService, "workflow", "manage"), handler.Activate)
		workflows.POST("/:id/deactivate", middleware.RBACAuthorize(rbacService, "workflow", "manage"), handler.Deactivate)
		workflows.POST("/:id/default", middleware.RBACAuthorize(rbacService, "workflow", "manage"), handler.SetDefault)
		workflows.DELETE("/:id", middleware.RBACAuthorize(rbacService, "workflow", "manage"), handler.Delete)
	}
}
