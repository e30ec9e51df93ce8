package consumer

import (
	"context"
	"encoding/json"

	"go-leave-approval/internal/audit"
	"go-leave-approval/internal/events"
	"go-leave-approval/internal/shared/dbtx"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type AuditStore interface {
	Store(ctx context.Context, entry audit.Entry) error
}

// AuditRecordedHandler persists audit.recorded events. Undecodable messages are
// logged and committed; storage errors are retried.
func AuditRecordedHandler(store AuditStore, logger *zap.Logger) HandleFunc {
	log := logger.Named("kafka.consumer.audit")

	return func(ctx context.Context, msg kafkago.Message) error {
		var evt events.AuditRecordedEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			log.Error("decode audit event failed", zap.Error(err))
			return nil
		}

		entry, err := audit.FromEvent(evt)
		if err != nil {
			log.Error("invalid audit event",
				zap.String("entry_id", evt.EntryID),
				zap.Error(err),
			)
			return nil
		}

		if err := store.Store(ctx, entry); err != nil {
			if dbtx.IsUniqueViolation(err, "") {
				log.Warn("audit entry already stored, skipping", zap.String("entry_id", evt.EntryID))
				return nil
			}
			return err
		}

		log.Debug("audit entry stored",
			zap.String("entry_id", evt.EntryID),
			zap.String("action", evt.Action),
			zap.String("target_id", evt.TargetID),
		)
		return nil
	}
}

func ConsumeAuditRecorded(ctx context.Context, reader Reader, store AuditStore, logger *zap.Logger) {
	Run(ctx, reader, "audit", AuditRecordedHandler(store, logger), logger)
}
