package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-leave-approval/internal/audit"
	"go-leave-approval/internal/config"
	"go-leave-approval/internal/events"
	"go-leave-approval/internal/messaging/kafka/consumer"
	"go-leave-approval/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunConsumer stores audit events and dispatches notifications until SIGINT
// or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	infra, err := connectInfrastructure(cfg)
	if err != nil {
		return err
	}
	defer infra.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("kafka.broker is required")
	}

	auditService := audit.NewService(audit.NewRepository(infra.gormDB))
	dispatcher := notification.NewDedupingDispatcher(notification.NewLogDispatcher(), infra.redis)

	auditReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.AuditRecordedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer auditReader.Close()

	notificationReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		GroupTopics:    []string{events.ApprovalRequiredTopic, events.LeaveDecidedTopic},
		GroupID:        cfg.Kafka.ConsumerGroup + "-notifications",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer notificationReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		consumer.ConsumeAuditRecorded(gctx, auditReader, auditService, logger)
		return nil
	})
	g.Go(func() error {
		consumer.ConsumeNotifications(gctx, notificationReader, dispatcher, logger)
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return g.Wait()
}
