package leave

import (
	"context"
	"database/sql"
	"time"

	"go-leave-approval/internal/shared/dbtx"
	"go-leave-approval/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	Status  string
	StaffID string
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindAll(ctx context.Context, organizationID string, filter ListFilter) ([]LeaveRequest, error)
	FindByID(ctx context.Context, organizationID, id string) (*LeaveRequest, error)
	FindByIDForUpdate(ctx context.Context, organizationID, id string) (*LeaveRequest, error)
	FindByIDs(ctx context.Context, organizationID string, ids []uuid.UUID) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, at *time.Time) error
	HasOverlappingPeriod(ctx context.Context, organizationID, staffID string, startDate, endDate time.Time) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, organizationID string, filter ListFilter) ([]LeaveRequest, error) {
	db := r.conn(ctx).Scopes(tenant.Scope(organizationID))
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.StaffID != "" {
		db = db.Where("staff_id = ?", filter.StaffID)
	}

	var leaves []LeaveRequest
	err := db.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, organizationID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(organizationID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByIDs(ctx context.Context, organizationID string, ids []uuid.UUID) ([]LeaveRequest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("id IN ?", ids).
		Find(&leaves).Error
	return leaves, err
}

// UpdateStatus stamps approved_at for approved/recorded and cancelled_at for cancelled.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, at *time.Time) error {
	updates := map[string]any{"status": status}
	switch status {
	case StatusApproved, StatusRecorded:
		updates["approved_at"] = at
	case StatusCancelled:
		updates["cancelled_at"] = at
	}
	return r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, organizationID, staffID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(organizationID)).
		Where("staff_id = ?", staffID).
		Where("status NOT IN ?", []string{StatusCancelled, StatusRejected}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}
