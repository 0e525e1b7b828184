package consumer

import (
	"context"

	"github.com/naveen224793-boop/assignment3/internal/bootstrap"
	"github.com/naveen224793-boop/assignment3/internal/events"
	"github.com/naveen224793-boop/assignment3/internal/shared/contextutil"

	json "github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeEmployeeLifecycle writes one audit entry per lifecycle event until
// ctx is done. Messages that cannot be decoded are logged and committed so
// they never block the partition.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(contextutil.WithRequestID(ctx, event.RequestID), auditEntry(event))

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Debug("employee lifecycle event audited",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func auditEntry(event events.EmployeeLifecycleEvent) bootstrap.AuditLog {
	action, message := "EMPLOYEE_EVENT", "employee event received"
	switch event.EventType {
	case events.EmployeeCreated:
		action, message = "EMPLOYEE_CREATED", "employee created"
	case events.EmployeeUpdated:
		action, message = "EMPLOYEE_UPDATED", "employee updated"
	case events.EmployeeDeleted:
		action, message = "EMPLOYEE_DELETED", "employee deleted"
	}

	return bootstrap.AuditLog{
		Action:  action,
		Message: message,
		Meta: map[string]any{
			"event_type":  event.EventType,
			"employee_id": event.EmployeeID,
			"name":        event.Snapshot.Name,
			"location":    event.Snapshot.Location,
			"position":    event.Snapshot.Position,
			"salary":      event.Snapshot.Salary,
			"occurred_at": event.OccurredAt,
		},
	}
}
