package staff

import (
	"net/http"

	"go-leave-approval/internal/orgrole"
	stafferrors "go-leave-approval/internal/staff/errors"
	"go-leave-approval/internal/shared/apperror"
	"go-leave-approval/internal/shared/clock"
	"go-leave-approval/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	directory Directory
	clock     clock.Clock
	logger    *zap.Logger
}

func NewHandler(directory Directory, clk clock.Clock, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("staff.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.handler")
	}
	return &Handler{directory: directory, clock: clk, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("staff request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetOrgInfo(c *gin.Context) {
	info, err := h.directory.GetOrgInfo(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if orgID := c.GetString("organization_id"); orgID != "" && info.OrganizationID.String() != orgID {
		h.writeServiceError(c, stafferrors.ErrStaffNotFound)
		return
	}

	response.Success(c, http.StatusOK, mapToOrgInfoResponse(*info), nil)
}

func (h *Handler) GetActingAppointment(c *gin.Context) {
	staffID := c.Param("staffId")
	a, err := h.directory.ActiveActingAppointment(c.Request.Context(), staffID, h.clock.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if a == nil {
		h.writeServiceError(c, stafferrors.ErrActingAppointmentNotFound)
		return
	}

	response.Success(c, http.StatusOK, ActingAppointmentResponse{
		StaffID:       a.StaffID,
		ActingStaffID: a.ActingStaffID,
		StartDate:     a.StartDate.Format("2006-01-02"),
		EndDate:       a.EndDate.Format("2006-01-02"),
		Reason:        a.Reason,
	}, nil)
}

func mapToOrgInfoResponse(s StaffOrganizationalInfo) OrgInfoResponse {
	roles := orgrole.OwnRoles(s.Profile())
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return OrgInfoResponse{
		StaffID:               s.StaffID,
		FullName:              s.FullName,
		Email:                 s.Email,
		Position:              s.Position,
		Grade:                 s.Grade,
		DutyStation:           s.DutyStation,
		Directorate:           s.DirectorateName(),
		Division:              deref(s.Division),
		Unit:                  s.UnitName(),
		SubUnit:               deref(s.SubUnit),
		ImmediateSupervisorID: deref(s.ImmediateSupervisorID),
		ManagerID:             deref(s.ManagerID),
		Roles:                 names,
		RequiresActingOfficer: orgrole.RequiresActingOfficer(s.Position, s.Grade, s.UnitName()),
	}
}
