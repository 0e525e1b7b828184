package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/naveen224793-boop/assignment3/internal/employee"
	employeeMock "github.com/naveen224793-boop/assignment3/internal/employee/mock"
	"github.com/naveen224793-boop/assignment3/internal/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestKafkaEventPublisher_PublishLifecycle(t *testing.T) {
	event := events.EmployeeLifecycleEvent{
		EventType:  events.EmployeeUpdated,
		RequestID:  "req-9",
		EmployeeID: testID,
		Snapshot:   events.EmployeeSnapshot{Name: "A", Location: "X", Position: "Dev", Salary: 10},
		OccurredAt: testTime,
	}

	t.Run("writes keyed message with event type header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := employeeMock.NewMockMessageWriter(ctrl)
		pub := employee.NewKafkaEventPublisher(writer, "")

		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				msg := msgs[0]
				assert.Equal(t, events.DefaultEmployeeLifecycleTopic, msg.Topic)
				assert.Equal(t, testID, string(msg.Key))
				assert.Equal(t, []kafka.Header{{Key: "event_type", Value: []byte(events.EmployeeUpdated)}}, msg.Headers)

				var decoded events.EmployeeLifecycleEvent
				assert.NoError(t, json.Unmarshal(msg.Value, &decoded))
				assert.Equal(t, event, decoded)
				return nil
			})

		assert.NoError(t, pub.PublishLifecycle(context.Background(), event))
	})

	t.Run("custom topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := employeeMock.NewMockMessageWriter(ctrl)
		pub := employee.NewKafkaEventPublisher(writer, "hr.audit")

		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
				assert.Equal(t, "hr.audit", msgs[0].Topic)
				return nil
			})

		assert.NoError(t, pub.PublishLifecycle(context.Background(), event))
	})

	t.Run("writer error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := employeeMock.NewMockMessageWriter(ctrl)
		pub := employee.NewKafkaEventPublisher(writer, "")

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))

		assert.EqualError(t, pub.PublishLifecycle(context.Background(), event), "leader not available")
	})
}

func TestNoopEventPublisher(t *testing.T) {
	assert.NoError(t, employee.NewNoopEventPublisher().PublishLifecycle(context.Background(), events.EmployeeLifecycleEvent{}))
}
