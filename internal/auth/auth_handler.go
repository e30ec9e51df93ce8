package auth

import (
	"errors"
	"net/http"

	"go-leave-approval/internal/audit"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/shared/apperror"
	"go-leave-approval/internal/shared/response"
	"go-leave-approval/internal/staff"
	stafferrors "go-leave-approval/internal/staff/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	directory staff.Directory
	logger    *zap.Logger
}

func NewHandler(directory staff.Directory, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{directory: directory, logger: l}
}

// Me returns the token identity and the approver offices the caller holds.
func (h *Handler) Me(c *gin.Context) {
	actor := audit.ActorFromContext(c)
	resp := MeResponse{
		UserID:         actor.UserID,
		StaffID:        actor.StaffID,
		OrganizationID: actor.OrganizationID,
		Name:           actor.Name,
		Email:          actor.Email,
		Role:           actor.Role,
		ApproverRole:   actor.ApproverRole,
		ApproverRoles:  []string{},
	}

	info, err := h.directory.GetOrgInfo(c.Request.Context(), actor.StaffID)
	switch {
	case err == nil:
		resp.Position = info.Position
		resp.Unit = info.UnitName()
		if resp.Name == "" {
			resp.Name = info.FullName
		}
		for _, r := range orgrole.OwnRoles(info.Profile()) {
			resp.ApproverRoles = append(resp.ApproverRoles, r.String())
		}
	case errors.Is(err, stafferrors.ErrStaffNotFound):
		h.logger.Warn("me: staff record not found", zap.String("staff_id", actor.StaffID))
	default:
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	if r, ok := orgrole.ParseRole(actor.ApproverRole); ok && !contains(resp.ApproverRoles, r.String()) {
		resp.ApproverRoles = append(resp.ApproverRoles, r.String())
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
