package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"go-leave-approval/internal/approval"
	approvalerrors "go-leave-approval/internal/approval/errors"
	"go-leave-approval/internal/audit"
	leaveerrors "go-leave-approval/internal/leave/errors"
	"go-leave-approval/internal/notification"
	"go-leave-approval/internal/orgrole"
	"go-leave-approval/internal/shared/clock"
	"go-leave-approval/internal/shared/counter"
	"go-leave-approval/internal/staff"
	stafferrors "go-leave-approval/internal/staff/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActInput is one approver decision on a single level.
type ActInput struct {
	Level      int
	Comments   string
	DelegateTo string
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actor audit.Actor, req SubmitLeaveRequest) (LeaveResponse, error)
	Act(ctx context.Context, actor audit.Actor, id string, action approval.Action, in ActInput) (LeaveResponse, error)
	Cancel(ctx context.Context, actor audit.Actor, id string) (LeaveResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (LeaveResponse, error)
	GetSteps(ctx context.Context, organizationID, id string) ([]approval.StepResponse, error)
	GetAll(ctx context.Context, organizationID string, filter ListFilter) ([]LeaveResponse, error)
	PendingApprovals(ctx context.Context, actor audit.Actor) ([]PendingApprovalResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	counter   counter.Repository
	directory staff.Directory
	selector  approval.Selector
	ledger    approval.Ledger
	notifier  notification.Notifier
	audit     audit.Sink
	clock     clock.Clock
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	directory staff.Directory,
	selector approval.Selector,
	ledger approval.Ledger,
	notifier notification.Notifier,
	sink audit.Sink,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clk == nil {
		clk = clock.NewReal(time.UTC)
	}
	return &service{
		db:        db,
		repo:      repo,
		counter:   counterRepo,
		directory: directory,
		selector:  selector,
		ledger:    ledger,
		notifier:  notifier,
		audit:     sink,
		clock:     clk,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, actor audit.Actor, req SubmitLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.String("organization_id", actor.OrganizationID),
		zap.String("staff_id", actor.StaffID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	orgUUID, startDate, endDate, days, err := validateSubmitRequest(actor, req)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	info, err := s.directory.GetOrgInfo(ctx, actor.StaffID)
	if err != nil {
		s.logger.Warn("submit leave staff lookup failed", zap.String("staff_id", actor.StaffID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if info.OrganizationID != orgUUID {
		return LeaveResponse{}, leaveerrors.ErrStaffNotInOrganization
	}

	sel, err := s.selector.Select(ctx, approval.Request{
		Staff:          *info,
		LeaveType:      req.LeaveType,
		Days:           days,
		OrganizationID: actor.OrganizationID,
	})
	if err != nil {
		s.logger.Warn("submit leave workflow selection failed", zap.String("staff_id", actor.StaffID), zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, actor.OrganizationID, actor.StaffID, startDate, endDate)
	if err != nil {
		s.logger.Error("submit leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("submit leave overlap detected",
			zap.String("organization_id", actor.OrganizationID),
			zap.String("staff_id", actor.StaffID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, actor.OrganizationID, counter.TypeLeaveReference)
	if err != nil {
		s.logger.Error("submit leave reference number failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:                   uuid.New(),
		OrganizationID:       orgUUID,
		ReferenceNumber:      fmt.Sprintf("%s%06d", referencePrefix, seq),
		StaffID:              actor.StaffID,
		LeaveType:            req.LeaveType,
		StartDate:            startDate,
		EndDate:              endDate,
		Days:                 days,
		Reason:               req.Reason,
		OfficerTakingOver:    optional(req.OfficerTakingOver),
		HandoverNotes:        optional(req.HandoverNotes),
		Status:               StatusPending,
		WorkflowSource:       sel.Source,
		WorkflowRule:         sel.RuleName,
		WorkflowDefinitionID: sel.WorkflowID,
		WorkflowVersion:      sel.WorkflowVersion,
		ChiefDirectorLeave:   sel.ChiefDirectorLeave,
		CreatedBy:            actor.ID(),
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	steps, err := s.ledger.WithTx(tx).CreateSteps(ctx, l.ID, sel.Levels)
	if err != nil {
		s.logger.Error("submit leave create steps failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return LeaveResponse{}, err
	}

	next := approval.NextApprovers(steps)
	if err := s.notifier.WithTx(tx).ApprovalRequired(ctx, toNotification(*l), next); err != nil {
		return LeaveResponse{}, err
	}

	entry := s.leaveEntry(actor, audit.ActionLeaveSubmitted, *l)
	entry.After = l.Status
	entry.Details = audit.Details(map[string]string{
		"reference_number": l.ReferenceNumber,
		"workflow_source":  sel.Source,
		"workflow_rule":    sel.RuleName,
		"levels":           fmt.Sprint(len(steps)),
	})
	if err := s.record(ctx, tx, entry); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("reference_number", l.ReferenceNumber),
		zap.String("workflow_source", sel.Source),
		zap.Int("levels", len(steps)),
	)

	resp := mapToResponse(*l)
	resp.Steps = approval.MapToStepListResponse(steps)
	resp.NextApprovers = approval.MapToStepListResponse(next)
	return resp, nil
}

func (s *service) Act(ctx context.Context, actor audit.Actor, id string, action approval.Action, in ActInput) (LeaveResponse, error) {
	s.logger.Debug("leave approval action requested",
		zap.String("leave_id", id),
		zap.String("organization_id", actor.OrganizationID),
		zap.String("actor_staff_id", actor.StaffID),
		zap.String("action", string(action)),
		zap.Int("level", in.Level),
	)

	if actor.StaffID == "" {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	roles, actorName, err := s.actorRoles(ctx, actor)
	if err != nil {
		return LeaveResponse{}, err
	}

	var delegateName string
	if action == approval.ActionDelegate && in.DelegateTo != "" {
		delegate, err := s.directory.GetOrgInfo(ctx, in.DelegateTo)
		if err != nil {
			if errors.Is(err, stafferrors.ErrStaffNotFound) {
				return LeaveResponse{}, approvalerrors.ErrDelegateNotFound
			}
			return LeaveResponse{}, err
		}
		if delegate.OrganizationID.String() != actor.OrganizationID {
			return LeaveResponse{}, approvalerrors.ErrDelegateNotFound
		}
		delegateName = delegate.FullName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave approval action begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, actor.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("leave approval action on closed leave",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}

	requester, err := s.directory.GetOrgInfo(ctx, l.StaffID)
	if err != nil {
		s.logger.Error("leave approval action requester lookup failed", zap.String("staff_id", l.StaffID), zap.Error(err))
		return LeaveResponse{}, err
	}

	actingAssigned := l.HasOfficerTakingOver()
	if !actingAssigned {
		appt, err := s.directory.ActiveActingAppointment(ctx, l.StaffID, l.StartDate)
		if err != nil {
			return LeaveResponse{}, err
		}
		actingAssigned = appt != nil
	}

	out, err := s.ledger.WithTx(tx).UpdateStep(ctx, approval.UpdateStepInput{
		LeaveRequestID:        l.ID,
		Level:                 in.Level,
		Action:                action,
		ActorStaffID:          actor.StaffID,
		ActorName:             actorName,
		ActorRoles:            roles,
		Comments:              in.Comments,
		DelegateTo:            in.DelegateTo,
		DelegateToName:        delegateName,
		RequesterStaffID:      l.StaffID,
		Requester:             requester.Profile(),
		ActingOfficerAssigned: actingAssigned,
		ChiefDirectorLeave:    l.ChiefDirectorLeave,
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	if out.Status.Final() {
		now := s.clock.Now()
		l.Status = string(out.Status)
		if err := qtx.UpdateStatus(ctx, l.ID, l.Status, &now); err != nil {
			s.logger.Error("leave approval action status write failed",
				zap.String("leave_id", id),
				zap.String("status", l.Status),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
		if l.Status == StatusApproved || l.Status == StatusRecorded {
			l.ApprovedAt = &now
		}
	}

	entry := audit.NewEntry(actor, stepAuditAction(action), audit.TargetApprovalStep, out.Step.ID.String())
	entry.TargetName = fmt.Sprintf("%s level %d", l.ReferenceNumber, out.Step.Level)
	entry.LeaveRequestID = ptr(l.ID.String())
	entry.StaffID = l.StaffID
	entry.Before = string(out.Previous)
	entry.After = string(out.Step.Status)
	entry.OccurredAt = s.clock.Now()
	details := map[string]string{
		"level":         fmt.Sprint(out.Step.Level),
		"approver_role": out.Step.ApproverRole,
		"leave_status":  string(out.Status),
	}
	if in.Comments != "" {
		details["comments"] = in.Comments
	}
	if in.DelegateTo != "" {
		details["delegated_to"] = in.DelegateTo
	}
	entry.Details = audit.Details(details)
	if err := s.record(ctx, tx, entry); err != nil {
		return LeaveResponse{}, err
	}

	notifier := s.notifier.WithTx(tx)
	if out.Status.Final() {
		err = notifier.LeaveDecided(ctx, toNotification(*l), l.Status, actor.StaffID)
	} else {
		err = notifier.ApprovalRequired(ctx, toNotification(*l), out.NextApprovers)
	}
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("leave approval action commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("leave approval action success",
		zap.String("leave_id", id),
		zap.String("action", string(action)),
		zap.Int("level", out.Step.Level),
		zap.String("status", l.Status),
	)

	resp := mapToResponse(*l)
	resp.Steps = approval.MapToStepListResponse(out.Steps)
	resp.NextApprovers = approval.MapToStepListResponse(out.NextApprovers)
	return resp, nil
}

func (s *service) Cancel(ctx context.Context, actor audit.Actor, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, actor.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if actor.StaffID == "" || l.StaffID != actor.StaffID {
		return LeaveResponse{}, leaveerrors.ErrNotRequester
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}

	now := s.clock.Now()
	if err := qtx.UpdateStatus(ctx, l.ID, StatusCancelled, &now); err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	before := l.Status
	l.Status = StatusCancelled
	l.CancelledAt = &now

	entry := s.leaveEntry(actor, audit.ActionLeaveCancelled, *l)
	entry.Before = before
	entry.After = l.Status
	if err := s.record(ctx, tx, entry); err != nil {
		return LeaveResponse{}, err
	}
	if err := s.notifier.WithTx(tx).LeaveDecided(ctx, toNotification(*l), l.Status, actor.StaffID); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("cancel leave success", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (LeaveResponse, error) {
	l, err := s.find(ctx, organizationID, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	steps, err := s.ledger.GetSteps(ctx, l.ID)
	if err != nil {
		return LeaveResponse{}, err
	}

	resp := mapToResponse(*l)
	resp.Steps = approval.MapToStepListResponse(steps)
	if l.Status == StatusPending {
		resp.NextApprovers = approval.MapToStepListResponse(approval.NextApprovers(steps))
	}
	return resp, nil
}

func (s *service) GetSteps(ctx context.Context, organizationID, id string) ([]approval.StepResponse, error) {
	l, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	steps, err := s.ledger.GetSteps(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return approval.MapToStepListResponse(steps), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string, filter ListFilter) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, organizationID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// PendingApprovals lists the active steps the actor may act on, leaving out
// the actor's own requests.
func (s *service) PendingApprovals(ctx context.Context, actor audit.Actor) ([]PendingApprovalResponse, error) {
	if actor.StaffID == "" {
		return nil, leaveerrors.ErrInvalidActorID
	}
	roles, _, err := s.actorRoles(ctx, actor)
	if err != nil {
		return nil, err
	}

	steps, err := s.ledger.PendingFor(ctx, actor.OrganizationID, actor.StaffID, roles)
	if err != nil {
		s.logger.Error("pending approvals lookup failed", zap.String("staff_id", actor.StaffID), zap.Error(err))
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(steps))
	for _, st := range steps {
		if !slices.Contains(ids, st.LeaveRequestID) {
			ids = append(ids, st.LeaveRequestID)
		}
	}
	leaves, err := s.repo.FindByIDs(ctx, actor.OrganizationID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]LeaveRequest, len(leaves))
	for _, l := range leaves {
		byID[l.ID] = l
	}

	resp := make([]PendingApprovalResponse, 0, len(steps))
	for _, st := range steps {
		l, ok := byID[st.LeaveRequestID]
		if !ok || l.StaffID == actor.StaffID {
			continue
		}
		resp = append(resp, PendingApprovalResponse{
			LeaveID:         l.ID.String(),
			ReferenceNumber: l.ReferenceNumber,
			StaffID:         l.StaffID,
			LeaveType:       l.LeaveType,
			StartDate:       l.StartDate.Format(dateLayout),
			EndDate:         l.EndDate.Format(dateLayout),
			Days:            l.Days,
			Step:            approval.MapToStepResponse(st),
		})
	}
	return resp, nil
}

func (s *service) find(ctx context.Context, organizationID, id string) (*LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

// actorRoles combines the offices the actor's position implies with the
// approver_role claim from the token. A staff record that cannot be found
// leaves only the claim.
func (s *service) actorRoles(ctx context.Context, actor audit.Actor) ([]orgrole.Role, string, error) {
	var roles []orgrole.Role
	name := actor.Name

	info, err := s.directory.GetOrgInfo(ctx, actor.StaffID)
	switch {
	case err == nil:
		roles = orgrole.OwnRoles(info.Profile())
		if name == "" {
			name = info.FullName
		}
	case errors.Is(err, stafferrors.ErrStaffNotFound):
		s.logger.Warn("actor staff record not found", zap.String("staff_id", actor.StaffID))
	default:
		return nil, "", err
	}

	if r, ok := orgrole.ParseRole(actor.ApproverRole); ok && !slices.Contains(roles, r) {
		roles = append(roles, r)
	}
	return roles, name, nil
}

func (s *service) leaveEntry(actor audit.Actor, action string, l LeaveRequest) audit.Entry {
	entry := audit.NewEntry(actor, action, audit.TargetLeave, l.ID.String())
	entry.TargetName = l.ReferenceNumber
	entry.LeaveRequestID = ptr(l.ID.String())
	entry.StaffID = l.StaffID
	entry.OccurredAt = s.clock.Now()
	return entry
}

func (s *service) record(ctx context.Context, tx *sql.Tx, entry audit.Entry) error {
	if s.audit == nil {
		return nil
	}
	if err := s.audit.WithTx(tx).Record(ctx, entry); err != nil {
		s.logger.Error("record leave audit failed",
			zap.String("target_id", entry.TargetID),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func stepAuditAction(a approval.Action) string {
	switch a {
	case approval.ActionApprove:
		return audit.ActionStepApproved
	case approval.ActionReject:
		return audit.ActionStepRejected
	case approval.ActionDelegate:
		return audit.ActionStepDelegated
	default:
		return audit.ActionStepSkipped
	}
}

const dateLayout = "2006-01-02"

func validateSubmitRequest(actor audit.Actor, req SubmitLeaveRequest) (uuid.UUID, time.Time, time.Time, float64, error) {
	orgUUID, err := uuid.Parse(actor.OrganizationID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidOrganizationID
	}
	if actor.StaffID == "" {
		return uuid.Nil, time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidActorID
	}
	if !ValidLeaveType(req.LeaveType) {
		return uuid.Nil, time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidLeaveType
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, 0, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, 0, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidDateRange
	}
	if req.OfficerTakingOver != "" && req.OfficerTakingOver == actor.StaffID {
		return uuid.Nil, time.Time{}, time.Time{}, 0, leaveerrors.ErrOfficerTakingOverIsRequester
	}

	period := calendarDays(startDate, endDate)
	days := req.Days
	if days == 0 {
		days = period
	}
	if days <= 0 || days > period {
		return uuid.Nil, time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidDays
	}
	return orgUUID, startDate, endDate, days, nil
}

func calendarDays(start, end time.Time) float64 {
	return float64(int(end.Sub(start).Hours()/24) + 1)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func toNotification(l LeaveRequest) notification.Leave {
	return notification.Leave{
		ID:               l.ID.String(),
		ReferenceNumber:  l.ReferenceNumber,
		OrganizationID:   l.OrganizationID.String(),
		RequesterStaffID: l.StaffID,
		LeaveType:        l.LeaveType,
		Days:             l.Days,
	}
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:                 l.ID.String(),
		OrganizationID:     l.OrganizationID.String(),
		ReferenceNumber:    l.ReferenceNumber,
		StaffID:            l.StaffID,
		LeaveType:          l.LeaveType,
		StartDate:          l.StartDate.Format(dateLayout),
		EndDate:            l.EndDate.Format(dateLayout),
		Days:               l.Days,
		Reason:             l.Reason,
		OfficerTakingOver:  l.OfficerTakingOver,
		HandoverNotes:      l.HandoverNotes,
		Status:             l.Status,
		WorkflowSource:     l.WorkflowSource,
		WorkflowRule:       l.WorkflowRule,
		ChiefDirectorLeave: l.ChiefDirectorLeave,
		CreatedBy:          l.CreatedBy,
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
	}
	if l.WorkflowDefinitionID != nil {
		v := l.WorkflowDefinitionID.String()
		resp.WorkflowDefinitionID = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if l.CancelledAt != nil {
		v := l.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptr(s string) *string {
	return &s
}
