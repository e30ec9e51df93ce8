package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Message is a rendered notification for one recipient.
type Message struct {
	Key         string
	RecipientID string
	Subject     string
	Body        string
}

// Dispatcher delivers messages to an external channel (mail, push).
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

// LogDispatcher only logs; it stands in until a mail gateway is configured.
type LogDispatcher struct {
	logger *zap.Logger
}

func NewLogDispatcher(logger ...*zap.Logger) *LogDispatcher {
	l := zap.L().Named("notification.dispatch")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatch")
	}
	return &LogDispatcher{logger: l}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, msg Message) error {
	d.logger.Info("notification",
		zap.String("recipient_id", msg.RecipientID),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}

const dedupeTTL = 24 * time.Hour

func DedupeKey(key string) string {
	return fmt.Sprintf("notification:sent:%s", key)
}

// DedupingDispatcher drops messages whose key was already delivered, so a
// redelivered Kafka message does not notify twice.
type DedupingDispatcher struct {
	next   Dispatcher
	rdb    *redis.Client
	logger *zap.Logger
}

func NewDedupingDispatcher(next Dispatcher, rdb *redis.Client, logger ...*zap.Logger) *DedupingDispatcher {
	l := zap.L().Named("notification.dedupe")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dedupe")
	}
	return &DedupingDispatcher{next: next, rdb: rdb, logger: l}
}

func (d *DedupingDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if msg.Key == "" || d.rdb == nil {
		return d.next.Dispatch(ctx, msg)
	}

	key := DedupeKey(msg.Key)
	fresh, err := d.rdb.SetNX(ctx, key, "1", dedupeTTL).Result()
	if err != nil {
		d.logger.Warn("dedupe check failed, dispatching anyway", zap.String("key", key), zap.Error(err))
		return d.next.Dispatch(ctx, msg)
	}
	if !fresh {
		d.logger.Debug("duplicate notification dropped", zap.String("key", key))
		return nil
	}

	if err := d.next.Dispatch(ctx, msg); err != nil {
		_ = d.rdb.Del(ctx, key).Err()
		return err
	}
	return nil
}
