package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/naveen224793-boop/assignment3/internal/bootstrap"
	"github.com/naveen224793-boop/assignment3/internal/config"
	"github.com/naveen224793-boop/assignment3/internal/messaging/kafka/consumer"
	"github.com/naveen224793-boop/assignment3/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer audits employee lifecycle events until SIGINT or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if !cfg.Kafka.Enabled() {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("consumer starting",
		zap.String("broker", cfg.Kafka.Broker),
		zap.String("topic", cfg.Kafka.Topic),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	consumer.ConsumeEmployeeLifecycle(ctx, reader, bootstrap.NewStdoutAuditLogger(), logger)

	logger.Info("consumer shutting down")
	return nil
}
