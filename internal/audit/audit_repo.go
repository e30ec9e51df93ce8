package audit

import (
	"context"
	"database/sql"

	"go-leave-approval/internal/shared/dbtx"
	"go-leave-approval/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Entry) error
	ListByTarget(ctx context.Context, organizationID, targetType, targetID string) ([]Entry, error)
	ListByLeave(ctx context.Context, organizationID, leaveRequestID string) ([]Entry, error)
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

// Create ignores an entry whose id already exists, which makes redelivered
// Kafka messages harmless.
func (r *repository) Create(ctx context.Context, e *Entry) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(e).Error
}

func (r *repository) ListByTarget(ctx context.Context, organizationID, targetType, targetID string) ([]Entry, error) {
	var entries []Entry
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(organizationID)).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}

// ListByLeave returns entries about the leave itself and about its approval steps.
func (r *repository) ListByLeave(ctx context.Context, organizationID, leaveRequestID string) ([]Entry, error) {
	var entries []Entry
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(organizationID)).
		Where("leave_request_id = ? OR (target_type = ? AND target_id = ?)", leaveRequestID, TargetLeave, leaveRequestID).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}
