package approval

import (
	"context"
	"fmt"

	"go-leave-approval/internal/approver"
	approvalerrors "go-leave-approval/internal/approval/errors"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/staff"
	"go-leave-approval/internal/workflow"

	"go.uber.org/zap"
)

// Request carries everything needed to pick an approval chain.
type Request struct {
	Staff          staff.StaffOrganizationalInfo
	LeaveType      string
	Days           float64
	OrganizationID string
}

func (r Request) Subject() workflow.Subject {
	return workflow.Subject{
		Profile:     r.Staff.Profile(),
		DutyStation: r.Staff.DutyStation,
		LeaveType:   r.LeaveType,
		Days:        r.Days,
	}
}

// Provider proposes a chain for a request. A nil selection means the provider
// has nothing to say and the next one is asked.
type Provider interface {
	Name() string
	Provide(ctx context.Context, req Request) (*Selection, error)
}

//go:generate mockgen -source=selector.go -destination=mock/selector_mock.go -package=mock
type Selector interface {
	Select(ctx context.Context, req Request) (*Selection, error)
}

type selector struct {
	providers []Provider
	logger    *zap.Logger
}

// NewSelector asks providers in order; the first non-empty chain wins.
func NewSelector(providers []Provider, logger ...*zap.Logger) Selector {
	l := zap.L().Named("approval.selector")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.selector")
	}
	return &selector{providers: providers, logger: l}
}

func (s *selector) Select(ctx context.Context, req Request) (*Selection, error) {
	for _, p := range s.providers {
		sel, err := p.Provide(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%s provider: %w", p.Name(), err)
		}
		if sel == nil {
			continue
		}

		sel.Levels = withoutSelf(sel.Levels, req.Staff)
		if len(sel.Levels) == 0 {
			s.logger.Debug("provider chain empty after self filter",
				zap.String("provider", p.Name()),
				zap.String("staff_id", req.Staff.StaffID),
			)
			continue
		}
		sel.Levels = renumber(sel.Levels)

		s.logger.Info("approval chain selected",
			zap.String("staff_id", req.Staff.StaffID),
			zap.String("source", sel.Source),
			zap.String("rule", sel.RuleName),
			zap.Int("levels", len(sel.Levels)),
		)
		return sel, nil
	}

	s.logger.Warn("no approval chain for request",
		zap.String("staff_id", req.Staff.StaffID),
		zap.String("leave_type", req.LeaveType),
	)
	return nil, approvalerrors.ErrWorkflowNotConfigured
}

// SelectApprovalLevels is the plain-argument form of Select.
func SelectApprovalLevels(
	ctx context.Context,
	s Selector,
	info staff.StaffOrganizationalInfo,
	leaveType string,
	days float64,
	organizationID string,
) ([]Level, error) {
	sel, err := s.Select(ctx, Request{Staff: info, LeaveType: leaveType, Days: days, OrganizationID: organizationID})
	if err != nil {
		return nil, err
	}
	return sel.Levels, nil
}

// withoutSelf removes every level the requester would be approving as
// themselves, either by role or because they were resolved as the approver.
func withoutSelf(levels []Level, requester staff.StaffOrganizationalInfo) []Level {
	own := orgrole.OwnRoles(requester.Profile())
	out := make([]Level, 0, len(levels))
	for _, l := range levels {
		if containsRole(own, l.ApproverRole) {
			continue
		}
		if l.ApproverStaffID != "" && l.ApproverStaffID == requester.StaffID {
			continue
		}
		out = append(out, l)
	}
	return out
}

func renumber(levels []Level) []Level {
	out := make([]Level, len(levels))
	for i, l := range levels {
		l.Level = i + 1
		l.Status = StepPending
		l.PreviousLevelCompleted = i == 0
		out[i] = l
	}
	return out
}

func containsRole(roles []orgrole.Role, r orgrole.Role) bool {
	for _, own := range roles {
		if own == r {
			return true
		}
	}
	return false
}

// resolveLevel fills the concrete approver for a role. A supervisor that cannot
// be resolved still keeps the raw supervisor id from the staff record.
func resolveLevel(
	ctx context.Context,
	resolver approver.Resolver,
	req Request,
	role orgrole.Role,
) (Level, error) {
	lvl := Level{
		ApproverRole: role,
		Status:       StepPending,
		IsRequired:   true,
		CanDelegate:  true,
	}

	a, err := resolver.Resolve(ctx, role, req.Staff.StaffID, req.Staff.UnitName())
	if err != nil {
		return Level{}, err
	}
	if a != nil {
		lvl.ApproverStaffID = a.StaffID
		lvl.ApproverName = a.Name
		lvl.ActingFor = a.ActingFor
		return lvl, nil
	}
	if role == orgrole.RoleSupervisor {
		lvl.ApproverStaffID = req.Staff.SupervisorID()
	}
	return lvl, nil
}
