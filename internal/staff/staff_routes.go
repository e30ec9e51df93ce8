package staff

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
	staff := r.Group("/staff")
	staff.Use(middleware.AuthMiddleware(jwtSecret))
	{
		staff.GET("/:staffId/org", middleware.RBACAuthorize(rbacService, "staff", "read"), handler.GetOrgInfo)
		staff.GET("/:staffId/acting", middleware.RBACAuthorize(rbacService, "staff", "read"), handler.GetActingAppointment)
	}
}
