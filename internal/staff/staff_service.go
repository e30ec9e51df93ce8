package staff

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-leave-approval/internal/orgrole"
	stafferrors "go-leave-approval/internal/staff/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OrgInfoKeyPrefix = "staff:org:"

func GetOrgInfoKey(staffID string) string {
	return OrgInfoKeyPrefix + staffID
}

// Directory answers "who holds this office" questions over the staff store.
// Find* methods return nil, nil when nobody holds the office.
//
//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Directory interface {
	GetOrgInfo(ctx context.Context, staffID string) (*StaffOrganizationalInfo, error)
	FindUnitHead(ctx context.Context, organizationID, unit string) (*StaffOrganizationalInfo, error)
	FindDirector(ctx context.Context, organizationID, unit, directorate string) (*StaffOrganizationalInfo, error)
	FindHROfficer(ctx context.Context, organizationID string) (*StaffOrganizationalInfo, error)
	FindHRDirector(ctx context.Context, organizationID string) (*StaffOrganizationalInfo, error)
	FindChiefDirector(ctx context.Context, organizationID string) (*StaffOrganizationalInfo, error)
	ActiveActingAppointment(ctx context.Context, staffID string, on time.Time) (*ActingAppointment, error)
}

type directory struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewDirectory(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Directory {
	l := zap.L().Named("staff.directory")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.directory")
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &directory{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (d *directory) GetOrgInfo(ctx context.Context, staffID string) (*StaffOrganizationalInfo, error) {
	if staffID == "" {
		return nil, stafferrors.ErrInvalidStaffID
	}
	cacheKey := GetOrgInfoKey(staffID)

	if d.rdb != nil {
		if cached, err := d.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var info StaffOrganizationalInfo
			if json.Unmarshal([]byte(cached), &info) == nil {
				return &info, nil
			}
		}
	}

	v, err, _ := d.sf.Do(cacheKey, func() (interface{}, error) {
		info, err := d.repo.FindByStaffID(ctx, staffID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, stafferrors.ErrStaffNotFound
			}
			return nil, err
		}

		if d.rdb != nil {
			if payload, err := json.Marshal(info); err == nil {
				if err := d.rdb.Set(ctx, cacheKey, payload, d.ttl).Err(); err != nil {
					d.logger.Warn("cache staff org info failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return info, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*StaffOrganizationalInfo), nil
}

func (d *directory) FindUnitHead(ctx context.Context, organizationID, unit string) (*StaffOrganizationalInfo, error) {
	if unit == "" {
		return nil, nil
	}
	members, err := d.repo.ListByUnit(ctx, organizationID, unit)
	if err != nil {
		return nil, err
	}
	return first(members, func(s StaffOrganizationalInfo) bool {
		return orgrole.IsUnitHead(s.Position)
	}), nil
}

func (d *directory) FindDirector(ctx context.Context, organizationID, unit, directorate string) (*StaffOrganizationalInfo, error) {
	dir, ok := orgrole.DirectorateOf(unit, directorate)
	if !ok {
		return nil, nil
	}
	members, err := d.repo.ListByDirectorate(ctx, organizationID, directorateNames(dir))
	if err != nil {
		return nil, err
	}
	return first(members, func(s StaffOrganizationalInfo) bool {
		return orgrole.IsDirector(s.Position, s.Grade)
	}), nil
}

func (d *directory) FindHROfficer(ctx context.Context, organizationID string) (*StaffOrganizationalInfo, error) {
	members, err := d.hrmdStaff(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return first(members, func(s StaffOrganizationalInfo) bool {
		return orgrole.IsHROfficer(s.Position, s.Grade, s.UnitName(), s.DirectorateName())
	}), nil
}

func (d *directory) FindHRDirector(ctx context.Context, organizationID string) (*StaffOrganizationalInfo, error) {
	members, err := d.hrmdStaff(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return first(members, func(s StaffOrganizationalInfo) bool {
		return orgrole.IsHRDirector(s.Position, s.Grade, s.UnitName(), s.DirectorateName())
	}), nil
}

func (d *directory) FindChiefDirector(ctx context.Context, organizationID string) (*StaffOrganizationalInfo, error) {
	members, err := d.repo.ListByPositionKeyword(ctx, organizationID, "chief director")
	if err != nil {
		return nil, err
	}
	return first(members, func(s StaffOrganizationalInfo) bool {
		return orgrole.IsChiefDirector(s.Position, s.Grade)
	}), nil
}

func (d *directory) ActiveActingAppointment(ctx context.Context, staffID string, on time.Time) (*ActingAppointment, error) {
	a, err := d.repo.FindActiveActing(ctx, staffID, on)
	if err != nil {
		d.logger.Error("find acting appointment failed", zap.String("staff_id", staffID), zap.Error(err))
		return nil, err
	}
	return a, nil
}

// hrmdStaff merges directorate members and unit members, keeping the first occurrence of each staff id.
func (d *directory) hrmdStaff(ctx context.Context, organizationID string) ([]StaffOrganizationalInfo, error) {
	var names []string
	for _, dir := range orgrole.Directorates {
		if dir.HRMD {
			names = append(names, directorateNames(dir)...)
		}
	}
	members, err := d.repo.ListByDirectorate(ctx, organizationID, names)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(members))
	for _, m := range members {
		seen[m.StaffID] = true
	}
	for _, u := range orgrole.Units {
		if !orgrole.IsHRMDUnit(u.Name) {
			continue
		}
		unitMembers, err := d.repo.ListByUnit(ctx, organizationID, u.Name)
		if err != nil {
			return nil, err
		}
		for _, m := range unitMembers {
			if !seen[m.StaffID] {
				seen[m.StaffID] = true
				members = append(members, m)
			}
		}
	}
	return members, nil
}

func directorateNames(d orgrole.Directorate) []string {
	return []string{
		d.Name,
		d.Acronym,
		d.Name + " Directorate",
		d.Acronym + " Directorate",
	}
}

func first(members []StaffOrganizationalInfo, match func(StaffOrganizationalInfo) bool) *StaffOrganizationalInfo {
	for i := range members {
		if match(members[i]) {
			m := members[i]
			return &m
		}
	}
	return nil
}
