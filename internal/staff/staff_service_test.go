package staff_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave-approval/internal/staff"
	stafferrors "go-leave-approval/internal/staff/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeStaffRepository struct {
	findByStaffIDFn         func(ctx context.Context, staffID string) (*staff.StaffOrganizationalInfo, error)
	listByUnitFn            func(ctx context.Context, organizationID, unit string) ([]staff.StaffOrganizationalInfo, error)
	listByDirectorateFn     func(ctx context.Context, organizationID string, names []string) ([]staff.StaffOrganizationalInfo, error)
	listByPositionKeywordFn func(ctx context.Context, organizationID, keyword string) ([]staff.StaffOrganizationalInfo, error)
	findActiveActingFn      func(ctx context.Context, staffID string, on time.Time) (*staff.ActingAppointment, error)
}

func (f *fakeStaffRepository) WithTx(tx *sql.Tx) staff.Repository {
	return f
}

func (f *fakeStaffRepository) FindByStaffID(ctx context.Context, staffID string) (*staff.StaffOrganizationalInfo, error) {
	if f.findByStaffIDFn != nil {
		return f.findByStaffIDFn(ctx, staffID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStaffRepository) ListByUnit(ctx context.Context, organizationID, unit string) ([]staff.StaffOrganizationalInfo, error) {
	if f.listByUnitFn != nil {
		return f.listByUnitFn(ctx, organizationID, unit)
	}
	return nil, nil
}

func (f *fakeStaffRepository) ListByDirectorate(ctx context.Context, organizationID string, names []string) ([]staff.StaffOrganizationalInfo, error) {
	if f.listByDirectorateFn != nil {
		return f.listByDirectorateFn(ctx, organizationID, names)
	}
	return nil, nil
}

func (f *fakeStaffRepository) ListByPositionKeyword(ctx context.Context, organizationID, keyword string) ([]staff.StaffOrganizationalInfo, error) {
	if f.listByPositionKeywordFn != nil {
		return f.listByPositionKeywordFn(ctx, organizationID, keyword)
	}
	return nil, nil
}

func (f *fakeStaffRepository) FindActiveActing(ctx context.Context, staffID string, on time.Time) (*staff.ActingAppointment, error) {
	if f.findActiveActingFn != nil {
		return f.findActiveActingFn(ctx, staffID, on)
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func TestDirectory_GetOrgInfo(t *testing.T) {
	ctx := context.Background()
	info := &staff.StaffOrganizationalInfo{
		StaffID:     "MFA-100",
		FullName:    "Ama Mensah",
		Position:    "Senior Officer",
		Grade:       "B",
		Unit:        strPtr("Budget Unit"),
		Directorate: strPtr("Finance & Administration"),
	}

	t.Run("cache hit skips repository", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		payload, _ := json.Marshal(info)
		mock.ExpectGet(staff.GetOrgInfoKey("MFA-100")).SetVal(string(payload))

		repo := &fakeStaffRepository{
			findByStaffIDFn: func(ctx context.Context, staffID string) (*staff.StaffOrganizationalInfo, error) {
				t.Fatal("repository should not be called on cache hit")
				return nil, nil
			},
		}
		dir := staff.NewDirectory(repo, rdb, time.Minute)

		got, err := dir.GetOrgInfo(ctx, "MFA-100")
		assert.NoError(t, err)
		assert.Equal(t, "Budget Unit", got.UnitName())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(staff.GetOrgInfoKey("MFA-100")).RedisNil()
		payload, _ := json.Marshal(info)
		mock.ExpectSet(staff.GetOrgInfoKey("MFA-100"), payload, time.Minute).SetVal("OK")

		repo := &fakeStaffRepository{
			findByStaffIDFn: func(ctx context.Context, staffID string) (*staff.StaffOrganizationalInfo, error) {
				assert.Equal(t, "MFA-100", staffID)
				return info, nil
			},
		}
		dir := staff.NewDirectory(repo, rdb, time.Minute)

		got, err := dir.GetOrgInfo(ctx, "MFA-100")
		assert.NoError(t, err)
		assert.Equal(t, "Ama Mensah", got.FullName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		dir := staff.NewDirectory(&fakeStaffRepository{}, nil, time.Minute)

		_, err := dir.GetOrgInfo(ctx, "MFA-404")
		assert.True(t, errors.Is(err, stafferrors.ErrStaffNotFound))
	})

	t.Run("empty staff id", func(t *testing.T) {
		dir := staff.NewDirectory(&fakeStaffRepository{}, nil, time.Minute)

		_, err := dir.GetOrgInfo(ctx, "")
		assert.True(t, errors.Is(err, stafferrors.ErrInvalidStaffID))
	})
}

func TestDirectory_FindOfficeHolders(t *testing.T) {
	ctx := context.Background()
	orgID := "org-1"

	repo := &fakeStaffRepository{
		listByUnitFn: func(ctx context.Context, organizationID, unit string) ([]staff.StaffOrganizationalInfo, error) {
			switch unit {
			case "Budget Unit":
				return []staff.StaffOrganizationalInfo{
					{StaffID: "MFA-011", Position: "Budget Analyst"},
					{StaffID: "MFA-020", Position: "Head of Unit"},
				}, nil
			case "Human Resource Unit":
				return []staff.StaffOrganizationalInfo{
					{StaffID: "MFA-301", Position: "Human Resource Officer", Unit: strPtr("Human Resource Unit")},
				}, nil
			}
			return nil, nil
		},
		listByDirectorateFn: func(ctx context.Context, organizationID string, names []string) ([]staff.StaffOrganizationalInfo, error) {
			if names[0] == "Finance & Administration" {
				return []staff.StaffOrganizationalInfo{
					{StaffID: "MFA-002", Position: "Deputy Director"},
					{StaffID: "MFA-003", Position: "Director, Finance & Administration"},
				}, nil
			}
			if names[0] == "Human Resource Management & Development" {
				return []staff.StaffOrganizationalInfo{
					{StaffID: "MFA-300", Position: "Director, HRMD", Directorate: strPtr("HRMD")},
				}, nil
			}
			return nil, nil
		},
		listByPositionKeywordFn: func(ctx context.Context, organizationID, keyword string) ([]staff.StaffOrganizationalInfo, error) {
			return []staff.StaffOrganizationalInfo{
				{StaffID: "MFA-050", Position: "Secretary to the Chief Director"},
				{StaffID: "MFA-001", Position: "Chief Director"},
			}, nil
		},
	}
	dir := staff.NewDirectory(repo, nil, time.Minute)

	head, err := dir.FindUnitHead(ctx, orgID, "Budget Unit")
	assert.NoError(t, err)
	assert.Equal(t, "MFA-020", head.StaffID)

	director, err := dir.FindDirector(ctx, orgID, "Budget Unit", "")
	assert.NoError(t, err)
	assert.Equal(t, "MFA-003", director.StaffID)

	hrOfficer, err := dir.FindHROfficer(ctx, orgID)
	assert.NoError(t, err)
	assert.Equal(t, "MFA-301", hrOfficer.StaffID)

	hrDirector, err := dir.FindHRDirector(ctx, orgID)
	assert.NoError(t, err)
	assert.Equal(t, "MFA-300", hrDirector.StaffID)

	cd, err := dir.FindChiefDirector(ctx, orgID)
	assert.NoError(t, err)
	assert.Equal(t, "MFA-001", cd.StaffID)

	none, err := dir.FindUnitHead(ctx, orgID, "")
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestActingAppointment_Covers(t *testing.T) {
	a := staff.ActingAppointment{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}

	assert.True(t, a.Covers(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)))
	assert.True(t, a.Covers(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, a.Covers(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))

	a.IsActive = false
	assert.False(t, a.Covers(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
}
