package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-leave-approval/internal/events"
	"go-leave-approval/internal/messaging/kafka"
	"go-leave-approval/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const EventTypeAuditRecorded = "audit.recorded"

// Sink records audit entries. WithTx binds the sink to the caller's
// transaction so an entry is only kept when the change it describes commits.
//
//go:generate mockgen -source=audit_sink.go -destination=mock/audit_sink_mock.go -package=mock
type Sink interface {
	WithTx(tx *sql.Tx) Sink
	Record(ctx context.Context, entry Entry) error
}

// OutboxSink enqueues entries as audit.recorded outbox events; the consumer
// process persists them into audit_logs.
type OutboxSink struct {
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewOutboxSink(outbox kafka.OutboxRepository, logger ...*zap.Logger) *OutboxSink {
	l := zap.L().Named("audit.sink")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.sink")
	}
	return &OutboxSink{outbox: outbox, logger: l}
}

func (s *OutboxSink) WithTx(tx *sql.Tx) Sink {
	return &OutboxSink{outbox: s.outbox.WithTx(tx), logger: s.logger}
}

func (s *OutboxSink) Record(ctx context.Context, entry Entry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.RequestID == "" {
		entry.RequestID = contextutil.GetRequestID(ctx)
	}

	payload, err := json.Marshal(ToEvent(entry))
	if err != nil {
		return err
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     entry.RequestID,
		AggregateType: entry.TargetType,
		AggregateID:   entry.TargetID,
		EventType:     EventTypeAuditRecorded,
		Topic:         events.AuditRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("enqueue audit entry failed",
			zap.String("action", entry.Action),
			zap.String("target_id", entry.TargetID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// LogSink writes entries to the "audit" logger. It is used where no database
// transaction exists, such as server shutdown.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger ...*zap.Logger) *LogSink {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &LogSink{logger: l}
}

func (s *LogSink) WithTx(*sql.Tx) Sink {
	return s
}

func (s *LogSink) Record(_ context.Context, entry Entry) error {
	s.logger.Info("audit event",
		zap.String("timestamp", entry.OccurredAt.UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("actor_id", entry.ActorID),
		zap.String("target_type", entry.TargetType),
		zap.String("target_id", entry.TargetID),
		zap.Any("details", entry.Details.Data()),
	)
	return nil
}

func ToEvent(e Entry) events.AuditRecordedEvent {
	evt := events.AuditRecordedEvent{
		EventType:      EventTypeAuditRecorded,
		RequestID:      e.RequestID,
		EntryID:        e.ID.String(),
		OrganizationID: e.OrganizationID,
		ActorID:        e.ActorID,
		ActorRole:      e.ActorRole,
		ActorEmail:     e.ActorEmail,
		Action:         e.Action,
		TargetType:     e.TargetType,
		TargetID:       e.TargetID,
		TargetName:     e.TargetName,
		StaffID:        e.StaffID,
		Before:         e.Before,
		After:          e.After,
		Details:        e.Details.Data(),
		OccurredAt:     e.OccurredAt,
	}
	if e.LeaveRequestID != nil {
		evt.LeaveRequestID = *e.LeaveRequestID
	}
	return evt
}

func FromEvent(evt events.AuditRecordedEvent) (Entry, error) {
	id, err := uuid.Parse(evt.EntryID)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{
		ID:             id,
		OrganizationID: evt.OrganizationID,
		ActorID:        evt.ActorID,
		ActorRole:      evt.ActorRole,
		ActorEmail:     evt.ActorEmail,
		Action:         evt.Action,
		TargetType:     evt.TargetType,
		TargetID:       evt.TargetID,
		TargetName:     evt.TargetName,
		StaffID:        evt.StaffID,
		Before:         evt.Before,
		After:          evt.After,
		Details:        datatypes.NewJSONType(evt.Details),
		RequestID:      evt.RequestID,
		OccurredAt:     evt.OccurredAt,
	}
	if evt.LeaveRequestID != "" {
		leaveID := evt.LeaveRequestID
		e.LeaveRequestID = &leaveID
	}
	return e, nil
}
