package audit_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave-approval/internal/audit"
	"go-leave-approval/internal/events"
	"go-leave-approval/internal/messaging/kafka"
	"go-leave-approval/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeOutboxRepository struct {
	tx      *sql.Tx
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	f.tx = tx
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func (f *fakeOutboxRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	return nil, nil
}

func TestOutboxSink_Record(t *testing.T) {
	actor := audit.Actor{StaffID: "MFA-010", OrganizationID: "org-1", ApproverRole: "HR_OFFICER", Email: "hr@mfa.gov"}
	leaveID := "8a3f1c64-1f6e-4b1c-9b8e-0c6a3b2f4d11"

	t.Run("enqueues event inside the bound transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		mock.ExpectBegin()
		tx, err := db.Begin()
		assert.NoError(t, err)

		outbox := &fakeOutboxRepository{}
		sink := audit.NewOutboxSink(outbox).WithTx(tx)

		entry := audit.NewEntry(actor, audit.ActionStepApproved, audit.TargetApprovalStep, "step-2")
		entry.LeaveRequestID = &leaveID
		entry.OccurredAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

		ctx := contextutil.WithRequestID(context.Background(), "req-42")
		assert.NoError(t, sink.Record(ctx, entry))

		assert.Same(t, tx, outbox.tx)
		assert.Len(t, outbox.created, 1)
		got := outbox.created[0]
		assert.Equal(t, events.AuditRecordedTopic, got.Topic)
		assert.Equal(t, audit.EventTypeAuditRecorded, got.EventType)
		assert.Equal(t, kafka.OutboxStatusPending, got.Status)
		assert.Equal(t, "req-42", got.RequestID)
		assert.Equal(t, "step-2", got.AggregateID)

		var evt events.AuditRecordedEvent
		assert.NoError(t, json.Unmarshal(got.Payload, &evt))
		assert.Equal(t, "MFA-010", evt.ActorID)
		assert.Equal(t, "HR_OFFICER", evt.ActorRole)
		assert.Equal(t, leaveID, evt.LeaveRequestID)
		assert.Equal(t, entry.ID.String(), evt.EntryID)
	})

	t.Run("outbox error is returned", func(t *testing.T) {
		outbox := &fakeOutboxRepository{err: errors.New("db down")}
		sink := audit.NewOutboxSink(outbox)

		err := sink.Record(context.Background(), audit.NewEntry(actor, audit.ActionWorkflowCreated, audit.TargetWorkflow, "wf-1"))
		assert.EqualError(t, err, "db down")
	})
}

func TestFromEvent(t *testing.T) {
	t.Run("rejects malformed entry id", func(t *testing.T) {
		_, err := audit.FromEvent(events.AuditRecordedEvent{EntryID: "nope"})
		assert.Error(t, err)
	})

	t.Run("restores entry with details", func(t *testing.T) {
		entry := audit.NewEntry(audit.Actor{UserID: "u-1"}, audit.ActionLeaveSubmitted, audit.TargetLeave, "leave-1")
		entry.Details = audit.Details(map[string]string{"reference": "LV-000001"})

		got, err := audit.FromEvent(audit.ToEvent(entry))
		assert.NoError(t, err)
		assert.Equal(t, entry.ID, got.ID)
		assert.Equal(t, "u-1", got.ActorID)
		assert.Nil(t, got.LeaveRequestID)
		assert.Equal(t, "LV-000001", got.Details.Data()["reference"])
	})
}
