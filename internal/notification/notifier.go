package notification

import (
	"context"
	"database/sql"
	"encoding/json"

	"go-leave-approval/internal/approval"
	"go-leave-approval/internal/events"
	"go-leave-approval/internal/messaging/kafka"
	"go-leave-approval/internal/shared/clock"
	"go-leave-approval/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventTypeApprovalRequired = "leave.approval_required"
	EventTypeLeaveDecided     = "leave.decided"
	AggregateLeaveRequest     = "leave_request"
)

// Leave is the part of a leave request that goes into notifications.
type Leave struct {
	ID               string
	ReferenceNumber  string
	OrganizationID   string
	RequesterStaffID string
	LeaveType        string
	Days             float64
}

// Notifier hands "who acts next" and final decisions to the notification
// pipeline. It never contacts anyone itself.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	WithTx(tx *sql.Tx) Notifier
	ApprovalRequired(ctx context.Context, leave Leave, next []approval.ApprovalStep) error
	LeaveDecided(ctx context.Context, leave Leave, status, decidedBy string) error
}

type outboxNotifier struct {
	outbox kafka.OutboxRepository
	clock  clock.Clock
	logger *zap.Logger
}

func NewOutboxNotifier(outbox kafka.OutboxRepository, clk clock.Clock, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notification.notifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.notifier")
	}
	return &outboxNotifier{outbox: outbox, clock: clk, logger: l}
}

func (n *outboxNotifier) WithTx(tx *sql.Tx) Notifier {
	return &outboxNotifier{outbox: n.outbox.WithTx(tx), clock: n.clock, logger: n.logger}
}

func (n *outboxNotifier) ApprovalRequired(ctx context.Context, leave Leave, next []approval.ApprovalStep) error {
	requestID := contextutil.GetRequestID(ctx)
	for _, st := range next {
		evt := events.ApprovalRequiredEvent{
			EventType:        EventTypeApprovalRequired,
			RequestID:        requestID,
			LeaveID:          leave.ID,
			ReferenceNumber:  leave.ReferenceNumber,
			OrganizationID:   leave.OrganizationID,
			RequesterStaffID: leave.RequesterStaffID,
			Level:            st.Level,
			ApproverRole:     st.ApproverRole,
			OccurredAt:       n.clock.Now(),
		}
		if st.ApproverStaffID != nil {
			evt.ApproverStaffID = *st.ApproverStaffID
		}
		if st.AssignedName != nil {
			evt.ApproverName = *st.AssignedName
		}
		if st.Status == approval.StepDelegated && st.DelegatedTo != nil {
			evt.DelegatedToStaffID = *st.DelegatedTo
		}

		if err := n.enqueue(ctx, leave.ID, EventTypeApprovalRequired, events.ApprovalRequiredTopic, evt); err != nil {
			return err
		}
		n.logger.Debug("approval notification queued",
			zap.String("leave_id", leave.ID),
			zap.Int("level", st.Level),
			zap.String("approver_role", st.ApproverRole),
		)
	}
	return nil
}

func (n *outboxNotifier) LeaveDecided(ctx context.Context, leave Leave, status, decidedBy string) error {
	evt := events.LeaveDecidedEvent{
		EventType:        EventTypeLeaveDecided,
		RequestID:        contextutil.GetRequestID(ctx),
		LeaveID:          leave.ID,
		ReferenceNumber:  leave.ReferenceNumber,
		OrganizationID:   leave.OrganizationID,
		RequesterStaffID: leave.RequesterStaffID,
		LeaveType:        leave.LeaveType,
		Days:             leave.Days,
		Status:           status,
		DecidedBy:        decidedBy,
		OccurredAt:       n.clock.Now(),
	}
	return n.enqueue(ctx, leave.ID, EventTypeLeaveDecided, events.LeaveDecidedTopic, evt)
}

func (n *outboxNotifier) enqueue(ctx context.Context, leaveID, eventType, topic string, evt any) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	err = n.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: AggregateLeaveRequest,
		AggregateID:   leaveID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		n.logger.Error("enqueue notification failed",
			zap.String("leave_id", leaveID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
	return err
}
