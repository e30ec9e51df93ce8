package middleware

import (
	"strings"

	autherrors "go-leave-approval/internal/auth/errors"
	"go-leave-approval/internal/auth/token"
	"go-leave-approval/internal/shared/apperror"
	"go-leave-approval/internal/shared/contextutil"
	"go-leave-approval/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token (or access_token cookie) and puts
// the identity on both the gin context and the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	manager := token.NewManager(secret, 0)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := manager.Parse(tokenString)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("staff_id", claims.StaffID)
		c.Set("organization_id", claims.OrganizationID)
		c.Set("role", claims.Role)
		c.Set("approver_role", claims.ApproverRole)
		c.Set("name", claims.Name)
		c.Set("email", claims.Email)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, claims.UserID)
		ctx = contextutil.WithStaffID(ctx, claims.StaffID)
		ctx = contextutil.WithOrganizationID(ctx, claims.OrganizationID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}
