package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/kitchen/internal/app"
)

const (
	envGRPCAddr            = "KITCHEN_GRPC_ADDR"
	envMetricsAddr         = "KITCHEN_METRICS_ADDR"
	envWorkers             = "KITCHEN_WORKERS"
	envWatchPollInterval   = "KITCHEN_WATCH_POLL_INTERVAL"
	envMaxQueueDepth       = "KITCHEN_MAX_QUEUE_DEPTH"
	envShutdownTimeout     = "KITCHEN_SHUTDOWN_TIMEOUT"
	envLogLevel            = "KITCHEN_LOG_LEVEL"
	envEventBroker         = "KITCHEN_EVENT_BROKER"
	envKafkaBrokers        = "KITCHEN_KAFKA_BROKERS"
	envKafkaTopic          = "KITCHEN_KAFKA_TOPIC"
	envRabbitMQURL         = "KITCHEN_RABBITMQ_URL"
	envRabbitMQExchange    = "KITCHEN_RABBITMQ_EXCHANGE"
	envBreakerFailures     = "KITCHEN_BROKER_BREAKER_FAILURES"
	envBreakerReset        = "KITCHEN_BROKER_BREAKER_RESET"
	envJournalDriver       = "KITCHEN_JOURNAL_DRIVER"
	envPostgresDSN         = "KITCHEN_POSTGRES_DSN"
	envPostgresAutoMigrate = "KITCHEN_POSTGRES_AUTO_MIGRATE"
	envOutboxPollInterval  = "KITCHEN_OUTBOX_POLL_INTERVAL"
	envOutboxBatchSize     = "KITCHEN_OUTBOX_BATCH_SIZE"
	envOutboxMaxAttempts   = "KITCHEN_OUTBOX_MAX_ATTEMPTS"
	envOutboxRetryDelay    = "KITCHEN_OUTBOX_RETRY_DELAY"
	envOutboxMaxAge        = "KITCHEN_OUTBOX_MAX_AGE"
)

type envLookup func(key string) (string, bool)

// readConfigFromEnv накладывает переменные окружения на DefaultConfig.
// Невалидные значения не применяются и возвращаются как предупреждения.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	warn := func(key, value string, err error) {
		warnings = append(warnings, fmt.Sprintf("ignore %s=%q: %v", key, value, err))
	}
	positiveInt := func(v int) bool { return v > 0 }
	nonNegativeInt := func(v int) bool { return v >= 0 }
	positiveDuration := func(v time.Duration) bool { return v > 0 }
	nonNegativeDuration := func(v time.Duration) bool { return v >= 0 }

	str := func(key string, target *string, lower bool) {
		value, ok := lookup(key)
		if !ok {
			return
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		if lower {
			value = strings.ToLower(value)
		}
		*target = value
	}
	integer := func(key string, target *int, valid func(int) bool, rule string) {
		value, ok := lookup(key)
		if !ok {
			return
		}
		parsed, err := parseInt(value, valid, rule)
		if err != nil {
			warn(key, value, err)
			return
		}
		*target = parsed
	}
	duration := func(key string, target *time.Duration, valid func(time.Duration) bool, rule string) {
		value, ok := lookup(key)
		if !ok {
			return
		}
		parsed, err := parseDuration(value, valid, rule)
		if err != nil {
			warn(key, value, err)
			return
		}
		*target = parsed
	}

	str(envGRPCAddr, &cfg.GRPCAddr, false)
	str(envMetricsAddr, &cfg.MetricsAddr, false)
	integer(envWorkers, &cfg.Workers, positiveInt, "must be > 0")
	duration(envWatchPollInterval, &cfg.WatchPollInterval, positiveDuration, "must be > 0")
	integer(envMaxQueueDepth, &cfg.MaxQueueDepth, nonNegativeInt, "must be >= 0")
	duration(envShutdownTimeout, &cfg.ShutdownTimeout, positiveDuration, "must be > 0")

	str(envEventBroker, &cfg.EventBroker, true)
	str(envKafkaBrokers, &cfg.KafkaBrokers, false)
	str(envKafkaTopic, &cfg.KafkaTopic, false)
	str(envRabbitMQURL, &cfg.RabbitMQURL, false)
	str(envRabbitMQExchange, &cfg.RabbitMQExchange, false)
	integer(envBreakerFailures, &cfg.BrokerBreakerFailures, positiveInt, "must be > 0")
	duration(envBreakerReset, &cfg.BrokerBreakerReset, positiveDuration, "must be > 0")

	str(envJournalDriver, &cfg.JournalDriver, true)
	str(envPostgresDSN, &cfg.PostgresDSN, false)
	if value, ok := lookup(envPostgresAutoMigrate); ok {
		parsed, err := parseBool(value)
		if err != nil {
			warn(envPostgresAutoMigrate, value, err)
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}

	duration(envOutboxPollInterval, &cfg.OutboxPollInterval, positiveDuration, "must be > 0")
	integer(envOutboxBatchSize, &cfg.OutboxBatchSize, positiveInt, "must be > 0")
	integer(envOutboxMaxAttempts, &cfg.OutboxMaxAttempts, positiveInt, "must be > 0")
	duration(envOutboxRetryDelay, &cfg.OutboxRetryDelay, nonNegativeDuration, "must be >= 0")
	duration(envOutboxMaxAge, &cfg.OutboxMaxAge, nonNegativeDuration, "must be >= 0")

	return cfg, warnings
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value")
	}
}

func parseInt(value string, valid func(int) bool, rule string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(parsed) {
		return 0, fmt.Errorf("%s", rule)
	}
	return parsed, nil
}

func parseDuration(value string, valid func(time.Duration) bool, rule string) (time.Duration, error) {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(parsed) {
		return 0, fmt.Errorf("%s", rule)
	}
	return parsed, nil
}
