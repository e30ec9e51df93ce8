package approval

import (
	"net/http"

	"go-leave-approval/internal/shared/apperror"
	"go-leave-approval/internal/shared/response"
	"go-leave-approval/internal/staff"
	stafferrors "go-leave-approval/internal/staff/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	selector  Selector
	directory staff.Directory
	logger    *zap.Logger
}

func NewHandler(selector Selector, directory staff.Directory, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("approval.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.handler")
	}
	return &Handler{selector: selector, directory: directory, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("approval request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Preview runs selection for a staff member without creating anything.
func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := c.Request.Context()
	info, err := h.directory.GetOrgInfo(ctx, req.StaffID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	orgID := c.GetString("organization_id")
	if orgID != "" && info.OrganizationID.String() != orgID {
		h.writeServiceError(c, stafferrors.ErrStaffNotFound)
		return
	}

	sel, err := h.selector.Select(ctx, Request{
		Staff:          *info,
		LeaveType:      req.LeaveType,
		Days:           req.Days,
		OrganizationID: info.OrganizationID.String(),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MapToPreviewResponse(info.StaffID, *sel), nil)
}
