package workflow

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go-leave-approval/internal/audit"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/shared/clock"
	"go-leave-approval/internal/shared/dbtx"
	workflowerrors "go-leave-approval/internal/workflow/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActiveKeyPrefix = "workflows:active:"
	activeCacheTTL  = 15 * time.Minute

	uniqueNameVersion = "uq_workflow_name_version_org"
)

// GetActiveKey is the cache key for the active definitions of one scope.
// An empty organization id is the global scope.
func GetActiveKey(organizationID string) string {
	if organizationID == "" {
		return ActiveKeyPrefix + "global"
	}
	return ActiveKeyPrefix + "org:" + organizationID
}

//go:generate mockgen -source=workflow_service.go -destination=mock/workflow_service_mock.go -package=mock
type Service interface {
	FindMatchingWorkflow(ctx context.Context, subject Subject, organizationID string) (*Match, error)
	Create(ctx context.Context, actor audit.Actor, req CreateWorkflowRequest) (WorkflowResponse, error)
	CreateVersion(ctx context.Context, actor audit.Actor, id string, req CreateVersionRequest) (WorkflowResponse, error)
	Activate(ctx context.Context, actor audit.Actor, id string) (WorkflowResponse, error)
	Deactivate(ctx context.Context, actor audit.Actor, id string) (WorkflowResponse, error)
	SetDefault(ctx context.Context, actor audit.Actor, id string) (WorkflowResponse, error)
	Delete(ctx context.Context, actor audit.Actor, id string) error
	GetByID(ctx context.Context, organizationID, id string) (WorkflowResponse, error)
	List(ctx context.Context, organizationID string, includeInactive bool) ([]WorkflowResponse, error)
	ListVersions(ctx context.Context, organizationID, id string) ([]WorkflowResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  audit.Sink
	rdb    *redis.Client
	sf     *singleflight.Group
	clock  clock.Clock
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, sink audit.Sink, rdb *redis.Client, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("workflow.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.service")
	}
	if clk == nil {
		clk = clock.NewReal(time.UTC)
	}
	return &service{
		db:     db,
		repo:   repo,
		audit:  sink,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		clock:  clk,
		logger: l,
	}
}

// FindMatchingWorkflow returns the first active definition visible to the
// organization whose conditions accept the subject, or nil when none does.
// Default definitions are tried first, then newer ones.
func (s *service) FindMatchingWorkflow(ctx context.Context, subject Subject, organizationID string) (*Match, error) {
	defs, err := s.loadActive(ctx, "")
	if err != nil {
		return nil, err
	}
	if organizationID != "" {
		orgDefs, err := s.loadActive(ctx, organizationID)
		if err != nil {
			return nil, err
		}
		defs = append(append([]Definition{}, orgDefs...), defs...)
	}

	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].IsDefault != defs[j].IsDefault {
			return defs[i].IsDefault
		}
		return defs[i].CreatedAt.After(defs[j].CreatedAt)
	})

	for _, d := range defs {
		if !d.Conditions.Data().Match(subject) {
			continue
		}
		s.logger.Debug("workflow matched",
			zap.String("workflow_id", d.ID.String()),
			zap.String("name", d.Name),
			zap.Int("version", d.Version),
		)
		return &Match{Definition: d, Steps: ApplicableSteps(d.Steps, subject)}, nil
	}
	return nil, nil
}

// ApplicableSteps evaluates per-step conditions. A step that does not match is
// dropped only when it can be skipped; mandatory steps are always kept.
func ApplicableSteps(steps []Step, subject Subject) []Step {
	out := make([]Step, 0, len(steps))
	for _, st := range steps {
		if !st.Conditions.Data().Match(subject) && st.CanSkip {
			continue
		}
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StepOrder < out[j].StepOrder })
	return out
}

func (s *service) loadActive(ctx context.Context, organizationID string) ([]Definition, error) {
	cacheKey := GetActiveKey(organizationID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var defs []Definition
			if json.Unmarshal([]byte(cached), &defs) == nil {
				return defs, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		var scope *string
		if organizationID != "" {
			scope = &organizationID
		}
		defs, err := s.repo.ListActive(ctx, scope)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(defs); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, activeCacheTTL).Err(); err != nil {
					s.logger.Warn("cache active workflows failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return defs, nil
	})
	if err != nil {
		return nil, err
	}

	defs := v.([]Definition)
	out := make([]Definition, len(defs))
	copy(out, defs)
	return out, nil
}

func (s *service) invalidate(ctx context.Context, scope *string) {
	if s.rdb == nil {
		return
	}
	orgID := ""
	if scope != nil {
		orgID = *scope
	}
	cacheKey := GetActiveKey(orgID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("invalidate active workflows failed", zap.String("key", cacheKey), zap.Error(err))
	}
}

func (s *service) Create(ctx context.Context, actor audit.Actor, req CreateWorkflowRequest) (WorkflowResponse, error) {
	s.logger.Debug("create workflow requested",
		zap.String("name", req.Name),
		zap.String("organization_id", actor.OrganizationID),
		zap.String("actor_id", actor.ID()),
	)

	conditions, err := validateCondition(req.Conditions)
	if err != nil {
		return WorkflowResponse{}, err
	}
	steps, err := buildSteps(req.Steps)
	if err != nil {
		return WorkflowResponse{}, err
	}
	if req.IsDefault && !req.IsActive {
		return WorkflowResponse{}, workflowerrors.ErrDefaultMustBeActive
	}

	var scope *string
	if !req.Global && actor.OrganizationID != "" {
		orgID := actor.OrganizationID
		scope = &orgID
	}
	version := req.Version
	if version == 0 {
		version = 1
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create workflow begin tx failed", zap.Error(err))
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.LockSiblings(ctx, req.Name, scope); err != nil {
		return WorkflowResponse{}, err
	}
	exists, err := qtx.ExistsVersion(ctx, req.Name, version, scope)
	if err != nil {
		return WorkflowResponse{}, err
	}
	if exists {
		return WorkflowResponse{}, workflowerrors.ErrDuplicateWorkflow
	}

	if req.IsActive {
		if err := qtx.DeactivateSiblings(ctx, req.Name, scope, nil); err != nil {
			return WorkflowResponse{}, err
		}
	}
	if req.IsDefault {
		if err := qtx.ClearDefault(ctx, scope); err != nil {
			return WorkflowResponse{}, err
		}
	}

	d := &Definition{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		Version:        version,
		OrganizationID: scope,
		IsActive:       req.IsActive,
		IsDefault:      req.IsDefault,
		Conditions:     datatypes.NewJSONType(conditions),
		CreatedBy:      actor.ID(),
		Steps:          steps,
	}
	if err := qtx.Create(ctx, d); err != nil {
		if dbtx.IsUniqueViolation(err, uniqueNameVersion) {
			return WorkflowResponse{}, workflowerrors.ErrDuplicateWorkflow
		}
		s.logger.Error("create workflow persist failed", zap.Error(err))
		return WorkflowResponse{}, err
	}

	if err := s.record(ctx, tx, actor, audit.ActionWorkflowCreated, *d, "", strconv.Itoa(d.Version)); err != nil {
		return WorkflowResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create workflow commit failed", zap.Error(err))
		return WorkflowResponse{}, err
	}
	s.invalidate(ctx, scope)

	s.logger.Info("create workflow success",
		zap.String("workflow_id", d.ID.String()),
		zap.String("name", d.Name),
		zap.Int("version", d.Version),
	)
	return mapToResponse(*d), nil
}

// CreateVersion adds version max+1 of the base's workflow. The new version is
// active, inherits the default flag and replaces whichever version was active.
func (s *service) CreateVersion(ctx context.Context, actor audit.Actor, id string, req CreateVersionRequest) (WorkflowResponse, error) {
	s.logger.Debug("create workflow version requested",
		zap.String("workflow_id", id),
		zap.String("actor_id", actor.ID()),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create workflow version begin tx failed", zap.Error(err))
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	base, err := s.findVisibleForUpdate(ctx, qtx, actor.OrganizationID, id)
	if err != nil {
		return WorkflowResponse{}, err
	}

	siblings, err := qtx.LockSiblings(ctx, base.Name, base.OrganizationID)
	if err != nil {
		return WorkflowResponse{}, err
	}
	latest, err := qtx.MaxVersion(ctx, base.Name, base.OrganizationID)
	if err != nil {
		return WorkflowResponse{}, err
	}

	conditions := base.Conditions.Data()
	if req.Conditions != nil {
		if conditions, err = validateCondition(req.Conditions); err != nil {
			return WorkflowResponse{}, err
		}
	}
	var steps []Step
	if len(req.Steps) > 0 {
		if steps, err = buildSteps(req.Steps); err != nil {
			return WorkflowResponse{}, err
		}
	} else {
		steps = copySteps(base.Steps)
	}
	description := base.Description
	if req.Description != nil {
		description = *req.Description
	}

	wasDefault := false
	for _, sib := range siblings {
		if sib.IsActive && sib.IsDefault {
			wasDefault = true
		}
	}
	if err := qtx.DeactivateSiblings(ctx, base.Name, base.OrganizationID, nil); err != nil {
		return WorkflowResponse{}, err
	}

	baseID := base.ID
	d := &Definition{
		ID:                uuid.New(),
		Name:              base.Name,
		Description:       description,
		Version:           latest + 1,
		OrganizationID:    base.OrganizationID,
		IsActive:          true,
		IsDefault:         wasDefault,
		Conditions:        datatypes.NewJSONType(conditions),
		CreatedBy:         actor.ID(),
		PreviousVersionID: &baseID,
		Steps:             steps,
	}
	if err := qtx.Create(ctx, d); err != nil {
		if dbtx.IsUniqueViolation(err, uniqueNameVersion) {
			return WorkflowResponse{}, workflowerrors.ErrDuplicateWorkflow
		}
		s.logger.Error("create workflow version persist failed", zap.Error(err))
		return WorkflowResponse{}, err
	}

	if err := s.record(ctx, tx, actor, audit.ActionWorkflowVersionCreated, *d, strconv.Itoa(base.Version), strconv.Itoa(d.Version)); err != nil {
		return WorkflowResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create workflow version commit failed", zap.Error(err))
		return WorkflowResponse{}, err
	}
	s.invalidate(ctx, d.OrganizationID)

	s.logger.Info("create workflow version success",
		zap.String("workflow_id", d.ID.String()),
		zap.String("previous_version_id", baseID.String()),
		zap.Int("version", d.Version),
	)
	return mapToResponse(*d), nil
}

// Activate makes id the only active version of its workflow. A default flag
// held by the version it replaces moves to id.
func (s *service) Activate(ctx context.Context, actor audit.Actor, id string) (WorkflowResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("activate workflow begin tx failed", zap.Error(err))
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := s.findVisibleForUpdate(ctx, qtx, actor.OrganizationID, id)
	if err != nil {
		return WorkflowResponse{}, err
	}
	siblings, err := qtx.LockSiblings(ctx, d.Name, d.OrganizationID)
	if err != nil {
		return WorkflowResponse{}, err
	}

	before := ""
	isDefault := d.IsDefault && d.IsActive
	for _, sib := range siblings {
		if sib.ID == d.ID || !sib.IsActive {
			continue
		}
		before = strconv.Itoa(sib.Version)
		if sib.IsDefault {
			isDefault = true
		}
	}

	if err := qtx.DeactivateSiblings(ctx, d.Name, d.OrganizationID, &d.ID); err != nil {
		return WorkflowResponse{}, err
	}
	if err := qtx.SetFlags(ctx, d.ID, true, isDefault); err != nil {
		return WorkflowResponse{}, err
	}
	d.IsActive = true
	d.IsDefault = isDefault

	if err := s.record(ctx, tx, actor, audit.ActionWorkflowActivated, *d, before, strconv.Itoa(d.Version)); err != nil {
		return WorkflowResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("activate workflow commit failed", zap.Error(err))
		return WorkflowResponse{}, err
	}
	s.invalidate(ctx, d.OrganizationID)

	s.logger.Info("activate workflow success",
		zap.String("workflow_id", d.ID.String()),
		zap.Int("version", d.Version),
	)
	return mapToResponse(*d), nil
}

func (s *service) Deactivate(ctx context.Context, actor audit.Actor, id string) (WorkflowResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := s.findVisibleForUpdate(ctx, qtx, actor.OrganizationID, id)
	if err != nil {
		return WorkflowResponse{}, err
	}
	if err := qtx.SetFlags(ctx, d.ID, false, false); err != nil {
		return WorkflowResponse{}, err
	}
	d.IsActive = false
	d.IsDefault = false

	if err := s.record(ctx, tx, actor, audit.ActionWorkflowDeactivated, *d, strconv.Itoa(d.Version), ""); err != nil {
		return WorkflowResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("deactivate workflow commit failed", zap.Error(err))
		return WorkflowResponse{}, err
	}
	s.invalidate(ctx, d.OrganizationID)

	s.logger.Info("deactivate workflow success", zap.String("workflow_id", d.ID.String()))
	return mapToResponse(*d), nil
}

// SetDefault flags id as the default of its scope, clearing the flag on every
// other definition in that scope.
func (s *service) SetDefault(ctx context.Context, actor audit.Actor, id string) (WorkflowResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := s.findVisibleForUpdate(ctx, qtx, actor.OrganizationID, id)
	if err != nil {
		return WorkflowResponse{}, err
	}
	if !d.IsActive {
		return WorkflowResponse{}, workflowerrors.ErrDefaultMustBeActive
	}

	before := ""
	prev, err := qtx.FindDefault(ctx, d.OrganizationID)
	if err != nil {
		return WorkflowResponse{}, err
	}
	if prev != nil {
		before = fmt.Sprintf("%s v%d", prev.Name, prev.Version)
	}

	if err := qtx.ClearDefault(ctx, d.OrganizationID); err != nil {
		return WorkflowResponse{}, err
	}
	if err := qtx.SetFlags(ctx, d.ID, true, true); err != nil {
		return WorkflowResponse{}, err
	}
	d.IsDefault = true

	after := fmt.Sprintf("%s v%d", d.Name, d.Version)
	if err := s.record(ctx, tx, actor, audit.ActionWorkflowDefaultSet, *d, before, after); err != nil {
		return WorkflowResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("set default workflow commit failed", zap.Error(err))
		return WorkflowResponse{}, err
	}
	s.invalidate(ctx, d.OrganizationID)

	s.logger.Info("set default workflow success", zap.String("workflow_id", d.ID.String()))
	return mapToResponse(*d), nil
}

func (s *service) Delete(ctx context.Context, actor audit.Actor, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := s.findVisibleForUpdate(ctx, qtx, actor.OrganizationID, id)
	if err != nil {
		return err
	}
	if d.IsActive {
		return workflowerrors.ErrActiveWorkflowDelete
	}
	if err := qtx.Delete(ctx, d.ID); err != nil {
		return err
	}

	if err := s.record(ctx, tx, actor, audit.ActionWorkflowDeleted, *d, strconv.Itoa(d.Version), ""); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete workflow commit failed", zap.Error(err))
		return err
	}
	s.invalidate(ctx, d.OrganizationID)

	s.logger.Info("delete workflow success", zap.String("workflow_id", d.ID.String()))
	return nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (WorkflowResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkflowResponse{}, workflowerrors.ErrInvalidWorkflowID
	}
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkflowResponse{}, workflowerrors.ErrWorkflowNotFound
		}
		return WorkflowResponse{}, err
	}
	if !visible(*d, organizationID) {
		return WorkflowResponse{}, workflowerrors.ErrWorkflowNotFound
	}
	return mapToResponse(*d), nil
}

func (s *service) List(ctx context.Context, organizationID string, includeInactive bool) ([]WorkflowResponse, error) {
	defs, err := s.repo.List(ctx, organizationID, includeInactive)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(defs), nil
}

func (s *service) ListVersions(ctx context.Context, organizationID, id string) ([]WorkflowResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, workflowerrors.ErrInvalidWorkflowID
	}
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workflowerrors.ErrWorkflowNotFound
		}
		return nil, err
	}
	if !visible(*d, organizationID) {
		return nil, workflowerrors.ErrWorkflowNotFound
	}

	defs, err := s.repo.ListVersions(ctx, d.Name, d.OrganizationID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(defs), nil
}

func (s *service) findVisibleForUpdate(ctx context.Context, qtx Repository, organizationID, id string) (*Definition, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, workflowerrors.ErrInvalidWorkflowID
	}
	d, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workflowerrors.ErrWorkflowNotFound
		}
		return nil, err
	}
	if !visible(*d, organizationID) {
		return nil, workflowerrors.ErrWorkflowNotFound
	}
	return d, nil
}

func (s *service) record(ctx context.Context, tx *sql.Tx, actor audit.Actor, action string, d Definition, before, after string) error {
	if s.audit == nil {
		return nil
	}
	entry := audit.NewEntry(actor, action, audit.TargetWorkflow, d.ID.String())
	entry.TargetName = d.Name
	entry.Before = before
	entry.After = after
	entry.OccurredAt = s.clock.Now()
	if err := s.audit.WithTx(tx).Record(ctx, entry); err != nil {
		s.logger.Error("record workflow audit failed",
			zap.String("workflow_id", d.ID.String()),
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func visible(d Definition, organizationID string) bool {
	return d.OrganizationID == nil || *d.OrganizationID == organizationID
}

func validateCondition(c *Condition) (Condition, error) {
	if c == nil {
		return Condition{}, nil
	}
	if err := c.Validate(); err != nil {
		return Condition{}, fmt.Errorf("%w: %v", workflowerrors.ErrInvalidCondition, err)
	}
	return *c, nil
}

func buildSteps(reqs []StepRequest) ([]Step, error) {
	if len(reqs) == 0 {
		return nil, workflowerrors.ErrNoSteps
	}

	seen := make(map[int]bool, len(reqs))
	steps := make([]Step, 0, len(reqs))
	for _, r := range reqs {
		role, ok := orgrole.ParseRole(r.ApproverRole)
		if !ok || r.StepOrder < 1 || seen[r.StepOrder] {
			return nil, workflowerrors.ErrInvalidStep
		}
		seen[r.StepOrder] = true

		conditions, err := validateCondition(r.Conditions)
		if err != nil {
			return nil, err
		}

		step := Step{
			ID:               uuid.New(),
			StepOrder:        r.StepOrder,
			ApproverRole:     role.String(),
			ApproverRoleType: r.ApproverRoleType,
			IsRequired:       true,
			CanSkip:          r.CanSkip,
			CanDelegate:      true,
			Conditions:       datatypes.NewJSONType(conditions),
		}
		if r.IsRequired != nil {
			step.IsRequired = *r.IsRequired
		}
		if r.CanDelegate != nil {
			step.CanDelegate = *r.CanDelegate
		}
		steps = append(steps, step)
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].StepOrder < steps[j].StepOrder })
	return steps, nil
}

func copySteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	for i, st := range steps {
		st.ID = uuid.New()
		st.WorkflowID = uuid.Nil
		out[i] = st
	}
	return out
}

func mapToResponse(d Definition) WorkflowResponse {
	resp := WorkflowResponse{
		ID:             d.ID.String(),
		Name:           d.Name,
		Description:    d.Description,
		Version:        d.Version,
		OrganizationID: d.OrganizationID,
		IsActive:       d.IsActive,
		IsDefault:      d.IsDefault,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
		Steps:          make([]StepResponse, len(d.Steps)),
	}
	if c := d.Conditions.Data(); !c.IsZero() {
		resp.Conditions = &c
	}
	if d.PreviousVersionID != nil {
		v := d.PreviousVersionID.String()
		resp.PreviousVersionID = &v
	}
	for i, st := range d.Steps {
		resp.Steps[i] = StepResponse{
			ID:               st.ID.String(),
			StepOrder:        st.StepOrder,
			ApproverRole:     st.ApproverRole,
			ApproverRoleType: st.ApproverRoleType,
			IsRequired:       st.IsRequired,
			CanSkip:          st.CanSkip,
			CanDelegate:      st.CanDelegate,
		}
		if c := st.Conditions.Data(); !c.IsZero() {
			resp.Steps[i].Conditions = &c
		}
	}
	return resp
}

func mapToListResponse(defs []Definition) []WorkflowResponse {
	resp := make([]WorkflowResponse, len(defs))
	for i, d := range defs {
		resp[i] = mapToResponse(d)
	}
	return resp
}
