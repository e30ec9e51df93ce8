package workflow

import (
	"context"
	"database/sql"

	"go-leave-approval/internal/shared/dbtx"
	"go-leave-approval/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=workflow_repo.go -destination=mock/workflow_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Definition) error
	FindByID(ctx context.Context, id string) (*Definition, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Definition, error)
	ListActive(ctx context.Context, scope *string) ([]Definition, error)
	List(ctx context.Context, organizationID string, includeInactive bool) ([]Definition, error)
	ListVersions(ctx context.Context, name string, scope *string) ([]Definition, error)
	LockSiblings(ctx context.Context, name string, scope *string) ([]Definition, error)
	MaxVersion(ctx context.Context, name string, scope *string) (int, error)
	ExistsVersion(ctx context.Context, name string, version int, scope *string) (bool, error)
	DeactivateSiblings(ctx context.Context, name string, scope *string, exceptID *uuid.UUID) error
	SetFlags(ctx context.Context, id uuid.UUID, active, isDefault bool) error
	FindDefault(ctx context.Context, scope *string) (*Definition, error)
	ClearDefault(ctx context.Context, scope *string) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func orderedSteps(db *gorm.DB) *gorm.DB {
	return db.Order("step_order ASC")
}

// Create inserts the definition and its steps.
func (r *repository) Create(ctx context.Context, d *Definition) error {
	return r.conn(ctx).Create(d).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Definition, error) {
	var d Definition
	err := r.conn(ctx).
		Preload("Steps", orderedSteps).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Definition, error) {
	var d Definition
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Steps", orderedSteps).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListActive(ctx context.Context, scope *string) ([]Definition, error) {
	var defs []Definition
	err := r.conn(ctx).
		Scopes(tenant.SameScope(scope)).
		Where("is_active = ?", true).
		Preload("Steps", orderedSteps).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&defs).Error
	return defs, err
}

func (r *repository) List(ctx context.Context, organizationID string, includeInactive bool) ([]Definition, error) {
	db := r.conn(ctx).
		Scopes(tenant.VisibleTo(organizationID)).
		Preload("Steps", orderedSteps)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	var defs []Definition
	err := db.Order("name ASC").Order("version DESC").Find(&defs).Error
	return defs, err
}

func (r *repository) ListVersions(ctx context.Context, name string, scope *string) ([]Definition, error) {
	var defs []Definition
	err := r.conn(ctx).
		Scopes(tenant.SameScope(scope)).
		Where("name = ?", name).
		Preload("Steps", orderedSteps).
		Order("version DESC").
		Find(&defs).Error
	return defs, err
}

// LockSiblings serializes writers on one workflow name within a scope. The
// advisory lock covers names with no rows yet, which row locks cannot, and
// global definitions, which the unique index does not guard since NULL
// organization ids never collide. Both locks are released with the transaction.
func (r *repository) LockSiblings(ctx context.Context, name string, scope *string) ([]Definition, error) {
	if err := r.conn(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", siblingLockKey(name, scope)).Error; err != nil {
		return nil, err
	}

	var defs []Definition
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.SameScope(scope)).
		Where("name = ?", name).
		Order("version ASC").
		Find(&defs).Error
	return defs, err
}

func siblingLockKey(name string, scope *string) string {
	if scope == nil || *scope == "" {
		return "workflow:global:" + name
	}
	return "workflow:" + *scope + ":" + name
}

func (r *repository) MaxVersion(ctx context.Context, name string, scope *string) (int, error) {
	var latest sql.NullInt64
	err := r.conn(ctx).
		Model(&Definition{}).
		Scopes(tenant.SameScope(scope)).
		Where("name = ?", name).
		Select("MAX(version)").
		Scan(&latest).Error
	if err != nil {
		return 0, err
	}
	return int(latest.Int64), nil
}

func (r *repository) ExistsVersion(ctx context.Context, name string, version int, scope *string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Definition{}).
		Scopes(tenant.SameScope(scope)).
		Where("name = ? AND version = ?", name, version).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DeactivateSiblings(ctx context.Context, name string, scope *string, exceptID *uuid.UUID) error {
	db := r.conn(ctx).
		Model(&Definition{}).
		Scopes(tenant.SameScope(scope)).
		Where("name = ?", name).
		Where("is_active = ?", true)
	if exceptID != nil {
		db = db.Where("id <> ?", *exceptID)
	}
	return db.Updates(map[string]any{"is_active": false, "is_default": false}).Error
}

func (r *repository) SetFlags(ctx context.Context, id uuid.UUID, active, isDefault bool) error {
	return r.conn(ctx).
		Model(&Definition{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "is_default": isDefault}).Error
}

// FindDefault returns nil, nil when the scope has no default workflow.
func (r *repository) FindDefault(ctx context.Context, scope *string) (*Definition, error) {
	var defs []Definition
	err := r.conn(ctx).
		Scopes(tenant.SameScope(scope)).
		Where("is_default = ?", true).
		Limit(1).
		Find(&defs).Error
	if err != nil || len(defs) == 0 {
		return nil, err
	}
	return &defs[0], nil
}

func (r *repository) ClearDefault(ctx context.Context, scope *string) error {
	return r.conn(ctx).
		Model(&Definition{}).
		Scopes(tenant.SameScope(scope)).
		Where("is_default = ?", true).
		Update("is_default", false).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Delete(&Definition{}, "id = ?", id).Error
}
