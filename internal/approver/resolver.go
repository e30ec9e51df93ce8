package approver

import (
	"context"
	"errors"

	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/staff"
	stafferrors "go-leave-approval/internal/staff/errors"
	"go-leave-approval/internal/shared/clock"

	"go.uber.org/zap"
)

// Approver is the person who must act on a level. ActingFor is set when an
// acting officer stands in for the nominal holder.
type Approver struct {
	StaffID   string `json:"staff_id"`
	Name      string `json:"name,omitempty"`
	ActingFor string `json:"acting_for,omitempty"`
}

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	// Resolve returns nil, nil when no holder of role can be determined.
	Resolve(ctx context.Context, role orgrole.Role, requestingStaffID, unit string) (*Approver, error)
}

type resolver struct {
	directory staff.Directory
	clock     clock.Clock
	logger    *zap.Logger
}

func NewResolver(directory staff.Directory, clk clock.Clock, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("approver.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approver.resolver")
	}
	return &resolver{directory: directory, clock: clk, logger: l}
}

func (r *resolver) Resolve(ctx context.Context, role orgrole.Role, requestingStaffID, unit string) (*Approver, error) {
	requester, err := r.directory.GetOrgInfo(ctx, requestingStaffID)
	if err != nil {
		return nil, err
	}
	if unit == "" {
		unit = requester.UnitName()
	}

	holder, err := r.nominalHolder(ctx, role, requester, unit)
	if err != nil {
		return nil, err
	}
	if holder == nil {
		r.logger.Debug("no holder for role",
			zap.String("role", role.String()),
			zap.String("requesting_staff_id", requestingStaffID),
			zap.String("unit", unit),
		)
		return nil, nil
	}

	return r.substituteActing(ctx, holder, requestingStaffID)
}

func (r *resolver) nominalHolder(
	ctx context.Context,
	role orgrole.Role,
	requester *staff.StaffOrganizationalInfo,
	unit string,
) (*staff.StaffOrganizationalInfo, error) {
	org := requester.OrganizationID.String()

	switch role {
	case orgrole.RoleSupervisor:
		supervisorID := requester.SupervisorID()
		if supervisorID == "" {
			return nil, nil
		}
		return r.lookup(ctx, supervisorID)
	case orgrole.RoleUnitHead, orgrole.RoleHeadOfIndependentUnit:
		return r.directory.FindUnitHead(ctx, org, unit)
	case orgrole.RoleHeadOfDepartment:
		if orgrole.IsIndependentUnit(unit) {
			return r.directory.FindUnitHead(ctx, org, unit)
		}
		return r.directory.FindDirector(ctx, org, unit, requester.DirectorateName())
	case orgrole.RoleDirector:
		return r.directory.FindDirector(ctx, org, unit, requester.DirectorateName())
	case orgrole.RoleHROfficer:
		return r.directory.FindHROfficer(ctx, org)
	case orgrole.RoleHRDirector:
		return r.directory.FindHRDirector(ctx, org)
	case orgrole.RoleChiefDirector:
		return r.directory.FindChiefDirector(ctx, org)
	}
	return nil, nil
}

// substituteActing swaps in the acting officer when the holder has an appointment
// covering today. An appointment naming the requester is ignored.
func (r *resolver) substituteActing(
	ctx context.Context,
	holder *staff.StaffOrganizationalInfo,
	requestingStaffID string,
) (*Approver, error) {
	nominal := &Approver{StaffID: holder.StaffID, Name: holder.FullName}

	appt, err := r.directory.ActiveActingAppointment(ctx, holder.StaffID, r.clock.Now())
	if err != nil {
		return nil, err
	}
	if appt == nil || appt.ActingStaffID == "" || appt.ActingStaffID == holder.StaffID {
		return nominal, nil
	}
	if appt.ActingStaffID == requestingStaffID {
		r.logger.Info("acting officer is the requester, keeping nominal holder",
			zap.String("holder_staff_id", holder.StaffID),
			zap.String("acting_staff_id", appt.ActingStaffID),
		)
		return nominal, nil
	}

	acting := &Approver{StaffID: appt.ActingStaffID, ActingFor: holder.StaffID}
	info, err := r.lookup(ctx, appt.ActingStaffID)
	if err != nil {
		return nil, err
	}
	if info != nil {
		acting.Name = info.FullName
	}
	return acting, nil
}

// lookup turns a missing staff record into nil, nil.
func (r *resolver) lookup(ctx context.Context, staffID string) (*staff.StaffOrganizationalInfo, error) {
	info, err := r.directory.GetOrgInfo(ctx, staffID)
	if errors.Is(err, stafferrors.ErrStaffNotFound) {
		return nil, nil
	}
	return info, err
}
