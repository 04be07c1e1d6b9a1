package realtime

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/config"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaListener consumes the change topic published by other restaurant services
// and invalidates on every message.
type KafkaListener struct {
	reader     messageReader
	settings   config.KafkaSettings
	invalidate Invalidator
}

func NewKafkaListener(settings config.KafkaSettings, invalidate Invalidator) *KafkaListener {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  settings.Brokers,
		GroupID:  settings.GroupID,
		Topic:    settings.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  500 * time.Millisecond,
	})
	return &KafkaListener{reader: reader, settings: settings, invalidate: invalidate}
}

func (l *KafkaListener) Close() error {
	return l.reader.Close()
}

// Run blocks until the context is cancelled.
func (l *KafkaListener) Run(ctx context.Context) {
	log.Printf("🔔 [realtime.kafka] consuming topic=%s group=%s brokers=%s",
		l.settings.Topic, l.settings.GroupID, strings.Join(l.settings.Brokers, ","))
	retry := newBackoff(time.Second, 30*time.Second)

	for {
		msg, err := l.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Println("[realtime.kafka] stopped")
				return
			}
			wait := retry.Next()
			log.Printf("[realtime.kafka] WARN fetch failed err=%v retry_in=%s", err, wait)
			select {
			case <-ctx.Done():
				log.Println("[realtime.kafka] stopped")
				return
			case <-time.After(wait):
			}
			continue
		}
		retry.Reset()

		l.invalidate(describeChange("kafka "+msg.Topic, msg.Value))

		if err := l.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Printf("[realtime.kafka] WARN commit failed offset=%d err=%v", msg.Offset, err)
		}
	}
}
