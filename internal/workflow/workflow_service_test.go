package workflow_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-leave-approval/internal/audit"
	"go-leave-approval/internal/shared/clock"
	"go-leave-approval/internal/workflow"
	workflowerrors "go-leave-approval/internal/workflow/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fakeWorkflowRepository struct {
	createFn             func(ctx context.Context, d *workflow.Definition) error
	findByIDFn           func(ctx context.Context, id string) (*workflow.Definition, error)
	findByIDForUpdateFn  func(ctx context.Context, id string) (*workflow.Definition, error)
	listActiveFn         func(ctx context.Context, scope *string) ([]workflow.Definition, error)
	listFn               func(ctx context.Context, organizationID string, includeInactive bool) ([]workflow.Definition, error)
	listVersionsFn       func(ctx context.Context, name string, scope *string) ([]workflow.Definition, error)
	lockSiblingsFn       func(ctx context.Context, name string, scope *string) ([]workflow.Definition, error)
	maxVersionFn         func(ctx context.Context, name string, scope *string) (int, error)
	existsVersionFn      func(ctx context.Context, name string, version int, scope *string) (bool, error)
	deactivateSiblingsFn func(ctx context.Context, name string, scope *string, exceptID *uuid.UUID) error
	setFlagsFn           func(ctx context.Context, id uuid.UUID, active, isDefault bool) error
	findDefaultFn        func(ctx context.Context, scope *string) (*workflow.Definition, error)
	clearDefaultFn       func(ctx context.Context, scope *string) error
	deleteFn             func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeWorkflowRepository) WithTx(tx *sql.Tx) workflow.Repository {
	return f
}

func (f *fakeWorkflowRepository) Create(ctx context.Context, d *workflow.Definition) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeWorkflowRepository) FindByID(ctx context.Context, id string) (*workflow.Definition, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkflowRepository) FindByIDForUpdate(ctx context.Context, id string) (*workflow.Definition, error) {
	if f.findByIDForUpdateFn != nil {
		return f.findByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkflowRepository) ListActive(ctx context.Context, scope *string) ([]workflow.Definition, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx, scope)
	}
	return nil, nil
}

func (f *fakeWorkflowRepository) List(ctx context.Context, organizationID string, includeInactive bool) ([]workflow.Definition, error) {
	if f.listFn != nil {
		return f.listFn(ctx, organizationID, includeInactive)
	}
	return nil, nil
}

func (f *fakeWorkflowRepository) ListVersions(ctx context.Context, name string, scope *string) ([]workflow.Definition, error) {
	if f.listVersionsFn != nil {
		return f.listVersionsFn(ctx, name, scope)
	}
	return nil, nil
}

func (f *fakeWorkflowRepository) LockSiblings(ctx context.Context, name string, scope *string) ([]workflow.Definition, error) {
	if f.lockSiblingsFn != nil {
		return f.lockSiblingsFn(ctx, name, scope)
	}
	return nil, nil
}

func (f *fakeWorkflowRepository) MaxVersion(ctx context.Context, name string, scope *string) (int, error) {
	if f.maxVersionFn != nil {
		return f.maxVersionFn(ctx, name, scope)
	}
	return 0, nil
}

func (f *fakeWorkflowRepository) ExistsVersion(ctx context.Context, name string, version int, scope *string) (bool, error) {
	if f.existsVersionFn != nil {
		return f.existsVersionFn(ctx, name, version, scope)
	}
	return false, nil
}

func (f *fakeWorkflowRepository) DeactivateSiblings(ctx context.Context, name string, scope *string, exceptID *uuid.UUID) error {
	if f.deactivateSiblingsFn != nil {
		return f.deactivateSiblingsFn(ctx, name, scope, exceptID)
	}
	return nil
}

func (f *fakeWorkflowRepository) SetFlags(ctx context.Context, id uuid.UUID, active, isDefault bool) error {
	if f.setFlagsFn != nil {
		return f.setFlagsFn(ctx, id, active, isDefault)
	}
	return nil
}

func (f *fakeWorkflowRepository) FindDefault(ctx context.Context, scope *string) (*workflow.Definition, error) {
	if f.findDefaultFn != nil {
		return f.findDefaultFn(ctx, scope)
	}
	return nil, nil
}

func (f *fakeWorkflowRepository) ClearDefault(ctx context.Context, scope *string) error {
	if f.clearDefaultFn != nil {
		return f.clearDefaultFn(ctx, scope)
	}
	return nil
}

func (f *fakeWorkflowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type recordingSink struct {
	entries []audit.Entry
	bound   bool
}

func (s *recordingSink) WithTx(tx *sql.Tx) audit.Sink {
	s.bound = tx != nil
	return s
}

func (s *recordingSink) Record(ctx context.Context, entry audit.Entry) error {
	s.entries = append(s.entries, entry)
	return nil
}

type workflowServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeWorkflowRepository
	sink    *recordingSink
	service workflow.Service
}

var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func setupWorkflowServiceTest(t *testing.T) *workflowServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeWorkflowRepository{}
	sink := &recordingSink{}
	svc := workflow.NewService(db, repo, sink, nil, clock.NewFixed(fixedNow))

	return &workflowServiceDeps{db: db, sqlMock: sqlMock, repo: repo, sink: sink, service: svc}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string { return &s }

func step(order int, role string, canSkip bool, cond workflow.Condition) workflow.Step {
	return workflow.Step{
		ID:           uuid.New(),
		StepOrder:    order,
		ApproverRole: role,
		IsRequired:   !canSkip,
		CanSkip:      canSkip,
		CanDelegate:  true,
		Conditions:   datatypes.NewJSONType(cond),
	}
}

func definition(name string, version int, org *string, active, isDefault bool, created time.Time, cond workflow.Condition, steps ...workflow.Step) workflow.Definition {
	return workflow.Definition{
		ID:             uuid.New(),
		Name:           name,
		Version:        version,
		OrganizationID: org,
		IsActive:       active,
		IsDefault:      isDefault,
		Conditions:     datatypes.NewJSONType(cond),
		CreatedAt:      created,
		Steps:          steps,
	}
}

var actor = audit.Actor{
	UserID:         "user-1",
	StaffID:        "MFA-900",
	OrganizationID: "org-1",
	Role:           "admin",
	Email:          "admin@mfa.gov",
}

func TestWorkflowService_FindMatchingWorkflow(t *testing.T) {
	ctx := context.Background()
	older := fixedNow.Add(-48 * time.Hour)
	annualOnly := workflow.Condition{Kind: workflow.KindIn, Field: workflow.FieldLeaveType, Values: []string{"Annual"}}
	sickOnly := workflow.Condition{Kind: workflow.KindIn, Field: workflow.FieldLeaveType, Values: []string{"Sick"}}

	t.Run("default definition wins over newer one", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		def := definition("Default chain", 1, nil, true, true, older, workflow.Condition{},
			step(1, "SUPERVISOR", false, workflow.Condition{}))
		newer := definition("Annual chain", 1, strPtr("org-1"), true, false, fixedNow, annualOnly,
			step(1, "UNIT_HEAD", false, workflow.Condition{}))

		deps.repo.listActiveFn = func(ctx context.Context, scope *string) ([]workflow.Definition, error) {
			if scope == nil {
				return []workflow.Definition{def}, nil
			}
			assert.Equal(t, "org-1", *scope)
			return []workflow.Definition{newer}, nil
		}

		match, err := deps.service.FindMatchingWorkflow(ctx, budgetOfficer, "org-1")
		assert.NoError(t, err)
		assert.NotNil(t, match)
		assert.Equal(t, def.ID, match.Definition.ID)
	})

	t.Run("newest matching definition when none is default", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		sick := definition("Sick chain", 1, strPtr("org-1"), true, false, fixedNow, sickOnly,
			step(1, "HR_OFFICER", false, workflow.Condition{}))
		annualOld := definition("Annual chain", 1, nil, true, false, older, annualOnly,
			step(1, "SUPERVISOR", false, workflow.Condition{}))
		annualNew := definition("Annual chain", 1, strPtr("org-1"), true, false, fixedNow.Add(-time.Hour), annualOnly,
			step(1, "UNIT_HEAD", false, workflow.Condition{}))

		deps.repo.listActiveFn = func(ctx context.Context, scope *string) ([]workflow.Definition, error) {
			if scope == nil {
				return []workflow.Definition{annualOld}, nil
			}
			return []workflow.Definition{sick, annualNew}, nil
		}

		match, err := deps.service.FindMatchingWorkflow(ctx, budgetOfficer, "org-1")
		assert.NoError(t, err)
		assert.Equal(t, annualNew.ID, match.Definition.ID)
	})

	t.Run("no match returns nil", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		deps.repo.listActiveFn = func(ctx context.Context, scope *string) ([]workflow.Definition, error) {
			return []workflow.Definition{definition("Sick chain", 1, nil, true, false, older, sickOnly)}, nil
		}

		match, err := deps.service.FindMatchingWorkflow(ctx, budgetOfficer, "")
		assert.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("step conditions drop only skippable steps", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		longLeave := workflow.Condition{Kind: workflow.KindRange, Field: workflow.FieldDays, Min: f64(20)}
		def := definition("Conditional", 1, nil, true, false, older, workflow.Condition{},
			step(3, "CHIEF_DIRECTOR", false, workflow.Condition{}),
			step(1, "SUPERVISOR", false, workflow.Condition{}),
			step(2, "DIRECTOR", true, longLeave),
			step(4, "HR_DIRECTOR", false, longLeave),
		)
		deps.repo.listActiveFn = func(ctx context.Context, scope *string) ([]workflow.Definition, error) {
			return []workflow.Definition{def}, nil
		}

		match, err := deps.service.FindMatchingWorkflow(ctx, budgetOfficer, "")
		assert.NoError(t, err)

		var roles []string
		for _, st := range match.Steps {
			roles = append(roles, st.ApproverRole)
		}
		assert.Equal(t, []string{"SUPERVISOR", "CHIEF_DIRECTOR", "HR_DIRECTOR"}, roles)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rdb, mock := redismock.NewClientMock()
		cached := []workflow.Definition{definition("Cached", 2, nil, true, true, older, workflow.Condition{},
			step(1, "HR_OFFICER", false, workflow.Condition{}))}
		payload, _ := json.Marshal(cached)
		mock.ExpectGet(workflow.GetActiveKey("")).SetVal(string(payload))

		repo := &fakeWorkflowRepository{
			listActiveFn: func(ctx context.Context, scope *string) ([]workflow.Definition, error) {
				t.Fatal("repository must not be called on cache hit")
				return nil, nil
			},
		}
		svc := workflow.NewService(db, repo, &recordingSink{}, rdb, clock.NewFixed(fixedNow))

		match, err := svc.FindMatchingWorkflow(ctx, budgetOfficer, "")
		assert.NoError(t, err)
		assert.Equal(t, "Cached", match.Definition.Name)
		assert.Equal(t, "HR_OFFICER", match.Steps[0].ApproverRole)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rdb, mock := redismock.NewClientMock()
		defs := []workflow.Definition{definition("Org chain", 1, strPtr("org-1"), true, false, older, workflow.Condition{},
			step(1, "SUPERVISOR", false, workflow.Condition{}))}
		payload, _ := json.Marshal(defs)

		mock.ExpectGet(workflow.GetActiveKey("")).RedisNil()
		mock.ExpectSet(workflow.GetActiveKey(""), []byte("null"), 15*time.Minute).SetVal("OK")
		mock.ExpectGet(workflow.GetActiveKey("org-1")).RedisNil()
		mock.ExpectSet(workflow.GetActiveKey("org-1"), payload, 15*time.Minute).SetVal("OK")

		repo := &fakeWorkflowRepository{
			listActiveFn: func(ctx context.Context, scope *string) ([]workflow.Definition, error) {
				if scope == nil {
					return nil, nil
				}
				return defs, nil
			},
		}
		svc := workflow.NewService(db, repo, &recordingSink{}, rdb, clock.NewFixed(fixedNow))

		match, err := svc.FindMatchingWorkflow(ctx, budgetOfficer, "org-1")
		assert.NoError(t, err)
		assert.Equal(t, "Org chain", match.Definition.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWorkflowService_Create(t *testing.T) {
	ctx := context.Background()
	req := workflow.CreateWorkflowRequest{
		Name:     "HQ annual leave",
		IsActive: true,
		Steps: []workflow.StepRequest{
			{StepOrder: 2, ApproverRole: "hr officer"},
			{StepOrder: 1, ApproverRole: "SUPERVISOR"},
		},
	}

	t.Run("success", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deactivated := false
		deps.repo.deactivateSiblingsFn = func(ctx context.Context, name string, scope *string, exceptID *uuid.UUID) error {
			deactivated = true
			assert.Equal(t, "HQ annual leave", name)
			assert.Equal(t, "org-1", *scope)
			assert.Nil(t, exceptID)
			return nil
		}
		var created *workflow.Definition
		deps.repo.createFn = func(ctx context.Context, d *workflow.Definition) error {
			created = d
			return nil
		}

		resp, err := deps.service.Create(ctx, actor, req)
		assert.NoError(t, err)
		assert.True(t, deactivated)
		assert.Equal(t, 1, resp.Version)
		assert.Equal(t, "MFA-900", created.CreatedBy)
		assert.Equal(t, "SUPERVISOR", resp.Steps[0].ApproverRole)
		assert.Equal(t, "HR_OFFICER", resp.Steps[1].ApproverRole)
		assert.True(t, resp.Steps[0].IsRequired)

		assert.True(t, deps.sink.bound)
		assert.Len(t, deps.sink.entries, 1)
		entry := deps.sink.entries[0]
		assert.Equal(t, audit.ActionWorkflowCreated, entry.Action)
		assert.Equal(t, "HQ annual leave", entry.TargetName)
		assert.Equal(t, "1", entry.After)
		assert.Equal(t, "admin@mfa.gov", entry.ActorEmail)
		assert.Equal(t, fixedNow, entry.OccurredAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name and version", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.existsVersionFn = func(ctx context.Context, name string, version int, scope *string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Create(ctx, actor, req)
		assert.ErrorIs(t, err, workflowerrors.ErrDuplicateWorkflow)
		assert.Empty(t, deps.sink.entries)
	})

	t.Run("default must be active", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		r := req
		r.IsActive = false
		r.IsDefault = true
		_, err := deps.service.Create(ctx, actor, r)
		assert.ErrorIs(t, err, workflowerrors.ErrDefaultMustBeActive)
	})

	t.Run("unknown approver role", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		r := req
		r.Steps = []workflow.StepRequest{{StepOrder: 1, ApproverRole: "MINISTER"}}
		_, err := deps.service.Create(ctx, actor, r)
		assert.ErrorIs(t, err, workflowerrors.ErrInvalidStep)
	})

	t.Run("duplicate step order", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		r := req
		r.Steps = []workflow.StepRequest{{StepOrder: 1, ApproverRole: "SUPERVISOR"}, {StepOrder: 1, ApproverRole: "UNIT_HEAD"}}
		_, err := deps.service.Create(ctx, actor, r)
		assert.ErrorIs(t, err, workflowerrors.ErrInvalidStep)
	})

	t.Run("invalid condition", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		r := req
		r.Conditions = &workflow.Condition{Kind: workflow.KindRange, Field: workflow.FieldDays}
		_, err := deps.service.Create(ctx, actor, r)
		assert.ErrorIs(t, err, workflowerrors.ErrInvalidCondition)
	})
}

func TestWorkflowService_CreateVersion(t *testing.T) {
	ctx := context.Background()
	org := strPtr("org-1")

	base := definition("HQ annual leave", 2, org, false, false, fixedNow, workflow.Condition{},
		step(1, "SUPERVISOR", false, workflow.Condition{}),
		step(2, "HR_OFFICER", false, workflow.Condition{}))
	active := definition("HQ annual leave", 3, org, true, true, fixedNow, workflow.Condition{})

	t.Run("deactivates prior version and links back", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*workflow.Definition, error) {
			b := base
			return &b, nil
		}
		deps.repo.lockSiblingsFn = func(ctx context.Context, name string, scope *string) ([]workflow.Definition, error) {
			return []workflow.Definition{base, active}, nil
		}
		deps.repo.maxVersionFn = func(ctx context.Context, name string, scope *string) (int, error) {
			return 3, nil
		}
		deactivated := false
		deps.repo.deactivateSiblingsFn = func(ctx context.Context, name string, scope *string, exceptID *uuid.UUID) error {
			deactivated = true
			return nil
		}
		var created *workflow.Definition
		deps.repo.createFn = func(ctx context.Context, d *workflow.Definition) error {
			created = d
			return nil
		}

		resp, err := deps.service.CreateVersion(ctx, actor, base.ID.String(), workflow.CreateVersionRequest{})
		assert.NoError(t, err)
		assert.True(t, deactivated)
		assert.Equal(t, 4, resp.Version)
		assert.True(t, resp.IsActive)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, base.ID.String(), *resp.PreviousVersionID)

		assert.Len(t, created.Steps, 2)
		assert.NotEqual(t, base.Steps[0].ID, created.Steps[0].ID)
		assert.Equal(t, "HR_OFFICER", created.Steps[1].ApproverRole)

		entry := deps.sink.entries[0]
		assert.Equal(t, audit.ActionWorkflowVersionCreated, entry.Action)
		assert.Equal(t, "2", entry.Before)
		assert.Equal(t, "4", entry.After)
	})

	t.Run("base from another organization", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*workflow.Definition, error) {
			b := base
			b.OrganizationID = strPtr("org-2")
			return &b, nil
		}

		_, err := deps.service.CreateVersion(ctx, actor, base.ID.String(), workflow.CreateVersionRequest{})
		assert.ErrorIs(t, err, workflowerrors.ErrWorkflowNotFound)
	})
}

func TestWorkflowService_Activate(t *testing.T) {
	ctx := context.Background()
	org := strPtr("org-1")
	target := definition("HQ annual leave", 1, org, false, false, fixedNow, workflow.Condition{})
	current := definition("HQ annual leave", 2, org, true, true, fixedNow, workflow.Condition{})

	deps := setupWorkflowServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, true)

	deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*workflow.Definition, error) {
		d := target
		return &d, nil
	}
	deps.repo.lockSiblingsFn = func(ctx context.Context, name string, scope *string) ([]workflow.Definition, error) {
		return []workflow.Definition{target, current}, nil
	}
	deps.repo.deactivateSiblingsFn = func(ctx context.Context, name string, scope *string, exceptID *uuid.UUID) error {
		assert.Equal(t, target.ID, *exceptID)
		return nil
	}
	deps.repo.setFlagsFn = func(ctx context.Context, id uuid.UUID, active, isDefault bool) error {
		assert.Equal(t, target.ID, id)
		assert.True(t, active)
		assert.True(t, isDefault)
		return nil
	}

	resp, err := deps.service.Activate(ctx, actor, target.ID.String())
	assert.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.True(t, resp.IsDefault)

	entry := deps.sink.entries[0]
	assert.Equal(t, audit.ActionWorkflowActivated, entry.Action)
	assert.Equal(t, "2", entry.Before)
	assert.Equal(t, "1", entry.After)
}

func TestWorkflowService_SetDefault(t *testing.T) {
	ctx := context.Background()
	org := strPtr("org-1")

	t.Run("inactive workflow", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*workflow.Definition, error) {
			d := definition("Draft", 1, org, false, false, fixedNow, workflow.Condition{})
			return &d, nil
		}

		_, err := deps.service.SetDefault(ctx, actor, uuid.NewString())
		assert.ErrorIs(t, err, workflowerrors.ErrDefaultMustBeActive)
	})

	t.Run("clears previous default", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		d := definition("HQ annual leave", 3, org, true, false, fixedNow, workflow.Condition{})
		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*workflow.Definition, error) {
			return &d, nil
		}
		deps.repo.findDefaultFn = func(ctx context.Context, scope *string) (*workflow.Definition, error) {
			prev := definition("Regional leave", 1, org, true, true, fixedNow, workflow.Condition{})
			return &prev, nil
		}
		cleared := false
		deps.repo.clearDefaultFn = func(ctx context.Context, scope *string) error {
			cleared = true
			assert.Equal(t, "org-1", *scope)
			return nil
		}

		resp, err := deps.service.SetDefault(ctx, actor, d.ID.String())
		assert.NoError(t, err)
		assert.True(t, cleared)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, "Regional leave v1", deps.sink.entries[0].Before)
		assert.Equal(t, "HQ annual leave v3", deps.sink.entries[0].After)
	})
}

func TestWorkflowService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("active workflow is kept", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*workflow.Definition, error) {
			d := definition("Live", 1, nil, true, false, fixedNow, workflow.Condition{})
			return &d, nil
		}

		err := deps.service.Delete(ctx, actor, uuid.NewString())
		assert.ErrorIs(t, err, workflowerrors.ErrActiveWorkflowDelete)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		err := deps.service.Delete(ctx, actor, "abc")
		assert.ErrorIs(t, err, workflowerrors.ErrInvalidWorkflowID)
	})
}

func TestWorkflowService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("hidden from other organizations", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*workflow.Definition, error) {
			d := definition("Private", 1, strPtr("org-2"), true, false, fixedNow, workflow.Condition{})
			return &d, nil
		}

		_, err := deps.service.GetByID(ctx, "org-1", uuid.NewString())
		assert.ErrorIs(t, err, workflowerrors.ErrWorkflowNotFound)
	})

	t.Run("global visible everywhere", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*workflow.Definition, error) {
			d := definition("Global", 1, nil, true, false, fixedNow, workflow.Condition{})
			return &d, nil
		}

		resp, err := deps.service.GetByID(ctx, "org-1", uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, resp.OrganizationID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupWorkflowServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "org-1", uuid.NewString())
		assert.ErrorIs(t, err, workflowerrors.ErrWorkflowNotFound)
	})
}
