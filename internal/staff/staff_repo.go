package staff

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/shared/dbtx"
	"go-leave-approval/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByStaffID(ctx context.Context, staffID string) (*StaffOrganizationalInfo, error)
	ListByUnit(ctx context.Context, organizationID, unit string) ([]StaffOrganizationalInfo, error)
	ListByDirectorate(ctx context.Context, organizationID string, names []string) ([]StaffOrganizationalInfo, error)
	ListByPositionKeyword(ctx context.Context, organizationID, keyword string) ([]StaffOrganizationalInfo, error)
	FindActiveActing(ctx context.Context, staffID string, on time.Time) (*ActingAppointment, error)
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

func (r *repository) FindByStaffID(ctx context.Context, staffID string) (*StaffOrganizationalInfo, error) {
	var s StaffOrganizationalInfo
	err := r.conn(ctx).
		Where("staff_id = ?", staffID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByUnit matches the unit name case-insensitively, aliases included.
func (r *repository) ListByUnit(ctx context.Context, organizationID, unit string) ([]StaffOrganizationalInfo, error) {
	names := []string{unit}
	if u, ok := orgrole.LookupUnit(unit); ok {
		names = append([]string{u.Name}, u.Aliases...)
	}

	var out []StaffOrganizationalInfo
	err := r.conn(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("active = ?", true).
		Where("LOWER(unit) IN ?", lowerAll(names)).
		Order("staff_id ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) ListByDirectorate(ctx context.Context, organizationID string, names []string) ([]StaffOrganizationalInfo, error) {
	var out []StaffOrganizationalInfo
	err := r.conn(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("active = ?", true).
		Where("LOWER(directorate) IN ?", lowerAll(names)).
		Order("staff_id ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) ListByPositionKeyword(ctx context.Context, organizationID, keyword string) ([]StaffOrganizationalInfo, error) {
	var out []StaffOrganizationalInfo
	err := r.conn(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("active = ?", true).
		Where("position ILIKE ?", "%"+keyword+"%").
		Order("staff_id ASC").
		Find(&out).Error
	return out, err
}

// FindActiveActing returns nil, nil when no appointment covers on.
func (r *repository) FindActiveActing(ctx context.Context, staffID string, on time.Time) (*ActingAppointment, error) {
	var a ActingAppointment
	day := on.Format("2006-01-02")
	err := r.conn(ctx).
		Where("staff_id = ?", staffID).
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", day, day).
		Order("start_date DESC").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
