package realtime

import (
	"encoding/json"
	"strings"
	"time"
)

// Invalidator is called for every change signal. reason is only used for logging.
type Invalidator func(reason string)

// Change is the payload published by the notify triggers and on the Kafka topic.
type Change struct {
	Table string `json:"table"`
	Op    string `json:"op"`
	ID    string `json:"id"`
}

// describeChange renders a change payload for the log line. Anything that is not a
// Change still counts as a signal.
func describeChange(source string, payload []byte) string {
	var ch Change
	if err := json.Unmarshal(payload, &ch); err != nil || ch.Table == "" {
		return source + " unparsed payload"
	}
	parts := []string{source, strings.ToLower(ch.Table), strings.ToUpper(ch.Op)}
	if ch.ID != "" {
		parts = append(parts, "id="+ch.ID)
	}
	return strings.Join(parts, " ")
}

// backoff doubles the reconnect delay up to max.
type backoff struct {
	min, max time.Duration
	next     time.Duration
}

func newBackoff(min, max time.Duration) *backoff {
	return &backoff{min: min, max: max, next: min}
}

func (b *backoff) Next() time.Duration {
	d := b.next
	b.next *= 2
	if b.next > b.max {
		b.next = b.max
	}
	return d
}

func (b *backoff) Reset() {
	b.next = b.min
}
