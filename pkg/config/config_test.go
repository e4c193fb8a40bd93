package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"HTTP_PORT", "LOG_LEVEL", "SQS_QUEUE_URL", "KAFKA_BROKERS", "KAFKA_TOPIC",
	"NATS_URL", "NATS_SUBJECT", "WEBSOCKETS_ENABLED", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.SQSQueueURL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "ledger.transactions", cfg.KafkaTopic)
	assert.Empty(t, cfg.NATSURL)
	assert.Equal(t, "ledger.transactions", cfg.NATSSubject)
	assert.True(t, cfg.WebsocketsEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SQS_QUEUE_URL", "https://sqs.us-east-1.amazonaws.com/123/ledger")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("KAFKA_TOPIC", "balances")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("NATS_SUBJECT", "balances")
	t.Setenv("WEBSOCKETS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/123/ledger", cfg.SQSQueueURL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "balances", cfg.KafkaTopic)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	assert.Equal(t, "balances", cfg.NATSSubject)
	assert.False(t, cfg.WebsocketsEnabled)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"HTTP_PORT", "http"},
		{"HTTP_PORT", "70000"},
		{"LOG_LEVEL", "verbose"},
		{"WEBSOCKETS_ENABLED", "sometimes"},
		{"SHUTDOWN_TIMEOUT", "soon"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
