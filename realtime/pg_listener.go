package realtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var DefaultChannels = []string{"customers_changed", "orders_changed"}

// notifyConn is the slice of a pooled connection the listener uses.
type notifyConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Release()
}

// pooledConn hands the connection back to the pool without its LISTEN registrations.
type pooledConn struct {
	*pgxpool.Conn
}

func (p pooledConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return p.Conn.Conn().WaitForNotification(ctx)
}

func (p pooledConn) Release() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := p.Conn.Exec(ctx, "UNLISTEN *"); err != nil {
		p.Conn.Conn().Close(ctx)
	}
	p.Conn.Release()
}

// PGListener holds one pooled connection in LISTEN mode and invalidates on every
// NOTIFY. It reconnects with back-off until the context is cancelled.
type PGListener struct {
	acquire    func(ctx context.Context) (notifyConn, error)
	channels   []string
	invalidate Invalidator
	minRetry   time.Duration
	maxRetry   time.Duration
}

func NewPGListener(pool *pgxpool.Pool, invalidate Invalidator, channels ...string) *PGListener {
	if len(channels) == 0 {
		channels = DefaultChannels
	}
	return &PGListener{
		acquire: func(ctx context.Context) (notifyConn, error) {
			conn, err := pool.Acquire(ctx)
			if err != nil {
				return nil, err
			}
			return pooledConn{conn}, nil
		},
		channels:   channels,
		invalidate: invalidate,
		minRetry:   time.Second,
		maxRetry:   30 * time.Second,
	}
}

func (l *PGListener) Run(ctx context.Context) {
	retry := newBackoff(l.minRetry, l.maxRetry)
	log.Printf("🔔 [realtime.pg] listening channels=%v", l.channels)

	for {
		err := l.listen(ctx, retry)
		if ctx.Err() != nil {
			log.Println("[realtime.pg] stopped")
			return
		}

		wait := retry.Next()
		log.Printf("[realtime.pg] WARN connection lost err=%v retry_in=%s", err, wait)
		select {
		case <-ctx.Done():
			log.Println("[realtime.pg] stopped")
			return
		case <-time.After(wait):
		}
	}
}

func (l *PGListener) listen(ctx context.Context, retry *backoff) error {
	conn, err := l.acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	for _, ch := range l.channels {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			return fmt.Errorf("listen %s: %w", ch, err)
		}
	}

	retry.Reset()
	// Changes made while disconnected were never notified.
	l.invalidate("pg listener connected")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}
			return fmt.Errorf("wait: %w", err)
		}
		l.invalidate(describeChange("pg "+n.Channel, []byte(n.Payload)))
	}
}
