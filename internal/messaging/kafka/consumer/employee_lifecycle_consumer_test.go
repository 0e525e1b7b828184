package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/naveen224793-boop/assignment3/internal/bootstrap"
	"github.com/naveen224793-boop/assignment3/internal/events"
	"github.com/naveen224793-boop/assignment3/internal/messaging/kafka/consumer"
	"github.com/naveen224793-boop/assignment3/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeReader replays msgs, then blocks until ctx is cancelled.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	fetchErrs []error
	committed []int64
	drained   chan struct{}
}

func newFakeReader(msgs ...kafkago.Message) *fakeReader {
	return &fakeReader{msgs: msgs, drained: make(chan struct{})}
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	f.mu.Lock()
	if len(f.fetchErrs) > 0 {
		err := f.fetchErrs[0]
		f.fetchErrs = f.fetchErrs[1:]
		f.mu.Unlock()
		return kafkago.Message{}, err
	}
	if len(f.msgs) > 0 {
		msg := f.msgs[0]
		f.msgs = f.msgs[1:]
		f.mu.Unlock()
		return msg, nil
	}
	f.mu.Unlock()

	select {
	case <-f.drained:
	default:
		close(f.drained)
	}
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

type captureAuditLogger struct {
	mu         sync.Mutex
	entries    []bootstrap.AuditLog
	requestIDs []string
}

func (c *captureAuditLogger) Log(ctx context.Context, entry bootstrap.AuditLog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
	c.requestIDs = append(c.requestIDs, contextutil.GetRequestID(ctx))
}

func eventMessage(t *testing.T, offset int64, event events.EmployeeLifecycleEvent) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Key: []byte(event.EmployeeID), Value: payload}
}

func runConsumer(t *testing.T, reader *fakeReader, audit bootstrap.AuditLogger) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		consumer.ConsumeEmployeeLifecycle(ctx, reader, audit, zap.NewNop())
		close(done)
	}()

	select {
	case <-reader.drained:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not drain messages")
	}
	cancel()
	<-done
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	created := events.EmployeeLifecycleEvent{
		EventType:  events.EmployeeCreated,
		RequestID:  "rid-1",
		EmployeeID: "e1",
		Snapshot:   events.EmployeeSnapshot{Name: "A", Location: "X", Position: "Dev", Salary: 0},
		OccurredAt: time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC),
	}
	deleted := created
	deleted.EventType = events.EmployeeDeleted
	deleted.RequestID = ""

	reader := newFakeReader(
		eventMessage(t, 1, created),
		kafkago.Message{Offset: 2, Value: []byte("{not json")},
		eventMessage(t, 3, deleted),
	)
	reader.fetchErrs = []error{errors.New("coordinator not available")}
	audit := &captureAuditLogger{}

	runConsumer(t, reader, audit)

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)

	audit.mu.Lock()
	defer audit.mu.Unlock()
	if assert.Len(t, audit.entries, 2) {
		assert.Equal(t, "EMPLOYEE_CREATED", audit.entries[0].Action)
		assert.Equal(t, "e1", audit.entries[0].Meta["employee_id"])
		assert.Equal(t, "EMPLOYEE_DELETED", audit.entries[1].Action)
	}
	assert.Equal(t, []string{"rid-1", ""}, audit.requestIDs)
}
