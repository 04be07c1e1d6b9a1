package config

import (
	"os"
	"strings"
)

// KafkaSettings configures the optional change-feed consumer. Brokers is empty when
// KAFKA_BROKERS is unset, which disables the consumer.
type KafkaSettings struct {
	Brokers []string
	Topic   string
	GroupID string
}

func (k KafkaSettings) Enabled() bool {
	return len(k.Brokers) > 0
}

func LoadKafkaSettings() KafkaSettings {
	return KafkaSettings{
		Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
		Topic:   getEnv("KAFKA_CHANGES_TOPIC", "restaurant.changes"),
		GroupID: getEnv("KAFKA_GROUP_ID", "customer-intelligence"),
	}
}

// CORSOrigins reads CORS_ORIGINS as a comma separated list.
func CORSOrigins() []string {
	origins := splitList(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
