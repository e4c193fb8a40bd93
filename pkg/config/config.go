// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the runtime configuration of the ledger service.
type Config struct {
	HTTPPort          string
	LogLevel          slog.Level
	SQSQueueURL       string
	KafkaBrokers      []string
	KafkaTopic        string
	NATSURL           string
	NATSSubject       string
	WebsocketsEnabled bool
	ShutdownTimeout   time.Duration
}

// Load builds a Config from environment variables, applying defaults for unset values.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:    getenv("HTTP_PORT", "8080"),
		SQSQueueURL: os.Getenv("SQS_QUEUE_URL"),
		KafkaTopic:  getenv("KAFKA_TOPIC", "ledger.transactions"),
		NATSURL:     os.Getenv("NATS_URL"),
		NATSSubject: getenv("NATS_SUBJECT", "ledger.transactions"),
	}

	var errs []error

	if port, err := strconv.Atoi(cfg.HTTPPort); err != nil || port < 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %q", cfg.HTTPPort))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL: %w", err))
	}

	for _, broker := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}

	enabled, err := strconv.ParseBool(getenv("WEBSOCKETS_ENABLED", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid WEBSOCKETS_ENABLED: %w", err))
	}
	cfg.WebsocketsEnabled = enabled

	timeout, err := time.ParseDuration(getenv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err))
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", timeout))
	}
	cfg.ShutdownTimeout = timeout

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.HTTPPort
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
