package approval

import (
	"context"
	"database/sql"
	"sort"

	approvalerrors "go-leave-approval/internal/approval/errors"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/shared/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateStepInput is one approver action plus what the guards need to judge it.
type UpdateStepInput struct {
	LeaveRequestID        uuid.UUID
	Level                 int
	Action                Action
	ActorStaffID          string
	ActorName             string
	ActorRoles            []orgrole.Role
	Comments              string
	DelegateTo            string
	DelegateToName        string
	RequesterStaffID      string
	Requester             orgrole.Profile
	ActingOfficerAssigned bool
	ChiefDirectorLeave    bool
}

// Outcome is the ledger after an action.
type Outcome struct {
	Steps         []ApprovalStep
	Step          ApprovalStep
	Previous      StepStatus
	Status        Status
	NextApprovers []ApprovalStep
}

//go:generate mockgen -source=ledger.go -destination=mock/ledger_mock.go -package=mock
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	CreateSteps(ctx context.Context, leaveRequestID uuid.UUID, levels []Level) ([]ApprovalStep, error)
	UpdateStep(ctx context.Context, in UpdateStepInput) (*Outcome, error)
	GetSteps(ctx context.Context, leaveRequestID uuid.UUID) ([]ApprovalStep, error)
	PendingFor(ctx context.Context, organizationID, staffID string, roles []orgrole.Role) ([]ApprovalStep, error)
}

type ledger struct {
	repo   Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewLedger(repo Repository, clk clock.Clock, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("approval.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.ledger")
	}
	return &ledger{repo: repo, clock: clk, logger: l}
}

func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{repo: l.repo.WithTx(tx), clock: l.clock, logger: l.logger}
}

func (l *ledger) CreateSteps(ctx context.Context, leaveRequestID uuid.UUID, levels []Level) ([]ApprovalStep, error) {
	ordered := append([]Level(nil), levels...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Level < ordered[j].Level })
	for i, lvl := range ordered {
		if lvl.Level != i+1 || !lvl.ApproverRole.Valid() {
			return nil, approvalerrors.ErrInvalidLevels
		}
	}

	steps := make([]ApprovalStep, 0, len(ordered))
	for i, lvl := range ordered {
		steps = append(steps, ApprovalStep{
			ID:                     uuid.New(),
			LeaveRequestID:         leaveRequestID,
			Level:                  lvl.Level,
			ApproverRole:           lvl.ApproverRole.String(),
			ApproverStaffID:        optional(lvl.ApproverStaffID),
			AssignedName:           optional(lvl.ApproverName),
			ActingFor:              optional(lvl.ActingFor),
			Status:                 StepPending,
			PreviousLevelCompleted: i == 0,
			IsRequired:             lvl.IsRequired,
			CanSkip:                lvl.CanSkip,
			CanDelegate:            lvl.CanDelegate,
			Version:                1,
		})
	}

	if err := l.repo.CreateAll(ctx, steps); err != nil {
		return nil, err
	}
	l.logger.Debug("approval steps created",
		zap.String("leave_request_id", leaveRequestID.String()),
		zap.Int("levels", len(steps)),
	)
	return steps, nil
}

// UpdateStep must run inside a transaction: the ladder stays locked from the
// guard check until commit.
func (l *ledger) UpdateStep(ctx context.Context, in UpdateStepInput) (*Outcome, error) {
	steps, err := l.repo.LockByLeave(ctx, in.LeaveRequestID)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, approvalerrors.ErrStepNotFound
	}

	err = CheckTransition(GuardContext{
		Steps:                 steps,
		Level:                 in.Level,
		Action:                in.Action,
		Comments:              in.Comments,
		RequesterStaffID:      in.RequesterStaffID,
		Requester:             in.Requester,
		ActorStaffID:          in.ActorStaffID,
		ActorRoles:            in.ActorRoles,
		DelegateTo:            in.DelegateTo,
		ActingOfficerAssigned: in.ActingOfficerAssigned,
	})
	if err != nil {
		l.logger.Info("approval action refused",
			zap.String("leave_request_id", in.LeaveRequestID.String()),
			zap.Int("level", in.Level),
			zap.String("action", string(in.Action)),
			zap.String("actor_staff_id", in.ActorStaffID),
			zap.Error(err),
		)
		return nil, err
	}

	next, err := Transition(steps, TransitionInput{
		Level:          in.Level,
		Action:         in.Action,
		ActorStaffID:   in.ActorStaffID,
		ActorName:      in.ActorName,
		Comments:       in.Comments,
		DelegateTo:     in.DelegateTo,
		DelegateToName: in.DelegateToName,
		At:             l.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	idx, _ := findStep(next, in.Level)
	before := steps[idx]
	acted := next[idx]

	n, err := l.repo.UpdateTransition(ctx, acted, before.Status, before.Version)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, approvalerrors.ErrConcurrentUpdate
	}

	if acted.Status.Resolved() {
		if _, ok := findStep(next, in.Level+1); ok {
			if err := l.repo.MarkPreviousCompleted(ctx, in.LeaveRequestID, in.Level+1); err != nil {
				return nil, err
			}
		}
	}

	out := &Outcome{
		Steps:         next,
		Step:          acted,
		Previous:      before.Status,
		Status:        ComputeStatus(next, in.ChiefDirectorLeave),
		NextApprovers: NextApprovers(next),
	}
	l.logger.Info("approval step updated",
		zap.String("leave_request_id", in.LeaveRequestID.String()),
		zap.Int("level", in.Level),
		zap.String("status", string(acted.Status)),
		zap.String("overall", string(out.Status)),
	)
	return out, nil
}

func (l *ledger) GetSteps(ctx context.Context, leaveRequestID uuid.UUID) ([]ApprovalStep, error) {
	return l.repo.ListByLeave(ctx, leaveRequestID)
}

func (l *ledger) PendingFor(ctx context.Context, organizationID, staffID string, roles []orgrole.Role) ([]ApprovalStep, error) {
	return l.repo.ListActionable(ctx, organizationID, staffID, roles)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
