package middleware

import (
	autherrors "go-leave-approval/internal/auth/errors"
	"go-leave-approval/internal/rbac"
	"go-leave-approval/internal/shared/apperror"
	"go-leave-approval/internal/shared/contextutil"
	"go-leave-approval/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

// RBACAuthorize must run after AuthMiddleware.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := c.GetString("staff_id")
		organizationID := c.GetString("organization_id")
		if staffID == "" || organizationID == "" {
			abortWith(c, autherrors.ErrMissingClaim)
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			StaffID:        staffID,
			OrganizationID: organizationID,
			Resource:       resource,
			Action:         action,
		})
		log := contextutil.GetLogger(c.Request.Context(), zap.L()).Named("middleware.rbac")
		if err != nil {
			log.Error("rbac enforce failed",
				zap.String("staff_id", staffID),
				zap.String("resource", resource),
				zap.Error(err),
			)
			abortWith(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			meta := contextutil.ExtractMetadata(c.Request.Context())
			log.Info("rbac denied",
				zap.String("request_id", meta.RequestID),
				zap.String("user_id", meta.UserID),
				zap.String("staff_id", staffID),
				zap.String("organization_id", organizationID),
				zap.String("required", resource+":"+action),
			)
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message,
				map[string]string{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
