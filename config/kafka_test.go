package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadKafkaSettings(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("KAFKA_CHANGES_TOPIC", "")
	t.Setenv("KAFKA_GROUP_ID", "dash")

	k := LoadKafkaSettings()
	assert.True(t, k.Enabled())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, k.Brokers)
	assert.Equal(t, "restaurant.changes", k.Topic)
	assert.Equal(t, "dash", k.GroupID)
}

func TestKafkaDisabledWithoutBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	assert.False(t, LoadKafkaSettings().Enabled())
}

func TestDatabaseURL(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@db:5432/x")
	assert.Equal(t, "postgres://u:p@db:5432/x", DatabaseURL())

	t.Setenv("DB_URL", "")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "bistro")
	assert.Equal(t, "postgres://chef:secret@pg:6543/bistro?sslmode=disable", DatabaseURL())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	assert.Equal(t, []string{"http://localhost:3000"}, CORSOrigins())

	t.Setenv("CORS_ORIGINS", "https://admin.example.com,https://ops.example.com")
	assert.Equal(t, []string{"https://admin.example.com", "https://ops.example.com"}, CORSOrigins())
}
