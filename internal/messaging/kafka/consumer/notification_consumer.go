package consumer

import (
	"context"
	"encoding/json"

	"go-leave-approval/internal/events"
	"go-leave-approval/internal/messaging/kafka/producer"
	"go-leave-approval/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NotificationHandler turns approval-required and leave-decided events into
// dispatched messages. The outbox id header keys deduplication.
func NotificationHandler(dispatcher notification.Dispatcher, logger *zap.Logger) HandleFunc {
	log := logger.Named("kafka.consumer.notification")

	return func(ctx context.Context, msg kafkago.Message) error {
		key := producer.Header(msg, "outbox_id")

		switch msg.Topic {
		case events.ApprovalRequiredTopic:
			var evt events.ApprovalRequiredEvent
			if err := json.Unmarshal(msg.Value, &evt); err != nil {
				log.Error("decode approval required event failed", zap.Error(err))
				return nil
			}
			m, ok := notification.RenderApprovalRequired(evt, key)
			if !ok {
				log.Warn("no concrete approver to notify",
					zap.String("leave_id", evt.LeaveID),
					zap.Int("level", evt.Level),
					zap.String("approver_role", evt.ApproverRole),
				)
				return nil
			}
			return dispatcher.Dispatch(ctx, m)

		case events.LeaveDecidedTopic:
			var evt events.LeaveDecidedEvent
			if err := json.Unmarshal(msg.Value, &evt); err != nil {
				log.Error("decode leave decided event failed", zap.Error(err))
				return nil
			}
			return dispatcher.Dispatch(ctx, notification.RenderLeaveDecided(evt, key))
		}

		log.Warn("unexpected topic", zap.String("topic", msg.Topic))
		return nil
	}
}

func ConsumeNotifications(ctx context.Context, reader Reader, dispatcher notification.Dispatcher, logger *zap.Logger) {
	Run(ctx, reader, "notification", NotificationHandler(dispatcher, logger), logger)
}
