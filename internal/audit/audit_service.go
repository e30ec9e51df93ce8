package audit

import (
	"context"
	"time"

	auditerrors "go-leave-approval/internal/audit/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	Store(ctx context.Context, entry Entry) error
	ListForLeave(ctx context.Context, organizationID, leaveID string) ([]EntryResponse, error)
	ListForWorkflow(ctx context.Context, organizationID, workflowID string) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Store(ctx context.Context, entry Entry) error {
	if entry.Action == "" || entry.TargetType == "" || entry.TargetID == "" || entry.ActorID == "" {
		return auditerrors.ErrInvalidEntry
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Error("store audit entry failed",
			zap.String("entry_id", entry.ID.String()),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) ListForLeave(ctx context.Context, organizationID, leaveID string) ([]EntryResponse, error) {
	if _, err := uuid.Parse(leaveID); err != nil {
		return nil, auditerrors.ErrInvalidTargetID
	}
	entries, err := s.repo.ListByLeave(ctx, organizationID, leaveID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(entries), nil
}

func (s *service) ListForWorkflow(ctx context.Context, organizationID, workflowID string) ([]EntryResponse, error) {
	if _, err := uuid.Parse(workflowID); err != nil {
		return nil, auditerrors.ErrInvalidTargetID
	}
	entries, err := s.repo.ListByTarget(ctx, organizationID, TargetWorkflow, workflowID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(entries), nil
}

func mapToResponse(e Entry) EntryResponse {
	resp := EntryResponse{
		ID:         e.ID.String(),
		ActorID:    e.ActorID,
		ActorRole:  e.ActorRole,
		ActorEmail: e.ActorEmail,
		Action:     e.Action,
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		TargetName: e.TargetName,
		StaffID:    e.StaffID,
		Before:     e.Before,
		After:      e.After,
		Details:    e.Details.Data(),
		OccurredAt: e.OccurredAt.Format(time.RFC3339),
	}
	if e.LeaveRequestID != nil {
		resp.LeaveRequestID = *e.LeaveRequestID
	}
	return resp
}

func mapToListResponse(entries []Entry) []EntryResponse {
	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapToResponse(e)
	}
	return resp
}
