package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeChange(t *testing.T) {
	assert.Equal(t, "pg customers_changed customers UPDATE id=42",
		describeChange("pg customers_changed", []byte(`{"table":"Customers","op":"update","id":"42"}`)))
	assert.Equal(t, "kafka restaurant.changes orders INSERT",
		describeChange("kafka restaurant.changes", []byte(`{"table":"orders","op":"INSERT"}`)))
	assert.Equal(t, "pg orders_changed unparsed payload", describeChange("pg orders_changed", []byte("")))
	assert.Equal(t, "kafka x unparsed payload", describeChange("kafka x", []byte(`{"op":"DELETE"}`)))
}

func TestBackoff(t *testing.T) {
	b := newBackoff(time.Second, 5*time.Second)
	assert.Equal(t, time.Second, b.Next())
	assert.Equal(t, 2*time.Second, b.Next())
	assert.Equal(t, 4*time.Second, b.Next())
	assert.Equal(t, 5*time.Second, b.Next())
	assert.Equal(t, 5*time.Second, b.Next())
	b.Reset()
	assert.Equal(t, time.Second, b.Next())
}

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		f.cancel()
		return kafka.Message{}, context.Canceled
	}
	m := f.messages[0]
	f.messages = f.messages[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	if len(msgs) > 0 && msgs[0].Offset == 1 {
		return errors.New("broker gone")
	}
	return nil
}

func (f *fakeReader) Close() error { return nil }

func TestKafkaListenerInvalidatesPerMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		messages: []kafka.Message{
			{Topic: "restaurant.changes", Offset: 0, Value: []byte(`{"table":"orders","op":"INSERT","id":"o1"}`)},
			{Topic: "restaurant.changes", Offset: 1, Value: []byte(`not json`)},
		},
	}

	var reasons []string
	l := &KafkaListener{reader: reader, invalidate: func(reason string) { reasons = append(reasons, reason) }}
	l.Run(ctx)

	require.Len(t, reasons, 2)
	assert.Equal(t, "kafka restaurant.changes orders INSERT id=o1", reasons[0])
	assert.Equal(t, "kafka restaurant.changes unparsed payload", reasons[1])
	assert.Equal(t, []int64{0, 1}, reader.committed)
}

type scriptedConn struct {
	notes    []*pgconn.Notification
	failWith error
	cancel   context.CancelFunc
	execs    []string
	released bool
}

func (c *scriptedConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.execs = append(c.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (c *scriptedConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	if len(c.notes) > 0 {
		n := c.notes[0]
		c.notes = c.notes[1:]
		return n, nil
	}
	if c.failWith != nil {
		return nil, c.failWith
	}
	c.cancel()
	return nil, context.Canceled
}

func (c *scriptedConn) Release() { c.released = true }

func TestPGListenerInvalidatesOnEveryConnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := &scriptedConn{
		notes:    []*pgconn.Notification{{Channel: "customers_changed", Payload: `{"table":"customers","op":"UPDATE","id":"7"}`}},
		failWith: errors.New("server closed the connection"),
	}
	second := &scriptedConn{cancel: cancel}

	attempts := 0
	var reasons []string
	l := &PGListener{
		acquire: func(ctx context.Context) (notifyConn, error) {
			attempts++
			switch attempts {
			case 1:
				return first, nil
			case 2:
				return nil, errors.New("connection refused")
			default:
				return second, nil
			}
		},
		channels:   DefaultChannels,
		invalidate: func(reason string) { reasons = append(reasons, reason) },
		minRetry:   time.Millisecond,
		maxRetry:   time.Millisecond,
	}
	l.Run(ctx)

	assert.Equal(t, 3, attempts)
	assert.Equal(t, []string{
		"pg listener connected",
		"pg customers_changed customers UPDATE id=7",
		"pg listener connected",
	}, reasons)
	assert.Equal(t, []string{`LISTEN "customers_changed"`, `LISTEN "orders_changed"`}, first.execs)
	assert.True(t, first.released)
	assert.True(t, second.released)
}
