package audit

import (
	"net/http"

	"go-leave-approval/internal/shared/apperror"
	"go-leave-approval/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("audit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("audit request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListForLeave(c *gin.Context) {
	entries, err := h.service.ListForLeave(c.Request.Context(), c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries, nil)
}

func (h *Handler) ListForWorkflow(c *gin.Context) {
	entries, err := h.service.ListForWorkflow(c.Request.Context(), c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries, nil)
}

// ActorFromContext reads the identity AuthMiddleware stored on the request.
func ActorFromContext(c *gin.Context) Actor {
	return Actor{
		UserID:         c.GetString("user_id"),
		StaffID:        c.GetString("staff_id"),
		OrganizationID: c.GetString("organization_id"),
		Role:           c.GetString("role"),
		ApproverRole:   c.GetString("approver_role"),
		Email:          c.GetString("email"),
		Name:           c.GetString("name"),
	}
}
