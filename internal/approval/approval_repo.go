package approval

import (
	"context"
	"database/sql"

	approvalerrors "go-leave-approval/internal/approval/errors"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=approval_repo.go -destination=mock/approval_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateAll(ctx context.Context, steps []ApprovalStep) error
	ListByLeave(ctx context.Context, leaveRequestID uuid.UUID) ([]ApprovalStep, error)
	LockByLeave(ctx context.Context, leaveRequestID uuid.UUID) ([]ApprovalStep, error)
	UpdateTransition(ctx context.Context, step ApprovalStep, expectedStatus StepStatus, expectedVersion int) (int64, error)
	MarkPreviousCompleted(ctx context.Context, leaveRequestID uuid.UUID, level int) error
	ListActionable(ctx context.Context, organizationID, staffID string, roles []orgrole.Role) ([]ApprovalStep, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) CreateAll(ctx context.Context, steps []ApprovalStep) error {
	if len(steps) == 0 {
		return nil
	}
	err := r.conn(ctx).Create(&steps).Error
	if dbtx.IsUniqueViolation(err, "uq_leave_step_level") {
		return approvalerrors.ErrStepsAlreadyExist
	}
	return err
}

func (r *repository) ListByLeave(ctx context.Context, leaveRequestID uuid.UUID) ([]ApprovalStep, error) {
	var steps []ApprovalStep
	err := r.conn(ctx).
		Where("leave_request_id = ?", leaveRequestID).
		Order("level ASC").
		Find(&steps).Error
	return steps, err
}

// LockByLeave reads the whole ladder FOR UPDATE so that actions on the same
// request serialize for the rest of the transaction.
func (r *repository) LockByLeave(ctx context.Context, leaveRequestID uuid.UUID) ([]ApprovalStep, error) {
	var steps []ApprovalStep
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("leave_request_id = ?", leaveRequestID).
		Order("level ASC").
		Find(&steps).Error
	return steps, err
}

// UpdateTransition writes the acted step only if nobody changed it since it was read.
// The returned count is zero when the guard did not hold.
func (r *repository) UpdateTransition(
	ctx context.Context,
	step ApprovalStep,
	expectedStatus StepStatus,
	expectedVersion int,
) (int64, error) {
	res := r.conn(ctx).
		Model(&ApprovalStep{}).
		Where("id = ? AND status = ? AND version = ?", step.ID, expectedStatus, expectedVersion).
		Updates(map[string]any{
			"status":            step.Status,
			"approver_name":     step.ApproverName,
			"approval_date":     step.ApprovalDate,
			"comments":          step.Comments,
			"delegated_to":      step.DelegatedTo,
			"delegated_to_name": step.DelegatedToName,
			"delegation_date":   step.DelegationDate,
			"acted_by":          step.ActedBy,
			"version":           step.Version,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) MarkPreviousCompleted(ctx context.Context, leaveRequestID uuid.UUID, level int) error {
	return r.conn(ctx).
		Model(&ApprovalStep{}).
		Where("leave_request_id = ? AND level = ?", leaveRequestID, level).
		Update("previous_level_completed", true).Error
}

// ListActionable returns the steps staffID can act on now: the active level of
// a pending request, assigned to them directly, by delegation, or by role when
// the level has no resolved approver.
func (r *repository) ListActionable(
	ctx context.Context,
	organizationID, staffID string,
	roles []orgrole.Role,
) ([]ApprovalStep, error) {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	assigned := r.conn(ctx).
		Where("s.status = ? AND s.delegated_to = ?", StepDelegated, staffID).
		Or("s.status = ? AND s.approver_staff_id = ?", StepPending, staffID)
	if len(names) > 0 {
		assigned = assigned.Or(
			"s.status = ? AND (s.approver_staff_id IS NULL OR s.approver_staff_id = '') AND s.approver_role IN ?",
			StepPending, names,
		)
	}

	var steps []ApprovalStep
	err := r.conn(ctx).
		Table("leave_approval_steps AS s").
		Select("s.*").
		Joins("JOIN leave_requests lr ON lr.id = s.leave_request_id").
		Where("lr.organization_id = ? AND lr.status = ?", organizationID, "pending").
		Where("s.previous_level_completed = ?", true).
		Where(assigned).
		Order("s.created_at ASC").
		Find(&steps).Error
	return steps, err
}
