package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/cart/internal/app"
)

const (
	envGRPCAddr            = "CART_GRPC_ADDR"
	envHTTPAddr            = "CART_HTTP_ADDR"
	envMetricsAddr         = "CART_METRICS_ADDR"
	envSessionCookie       = "CART_SESSION_COOKIE"
	envSessionTTL          = "CART_SESSION_TTL"
	envStorageDriver       = "CART_STORAGE_DRIVER"
	envPostgresDSN         = "CART_POSTGRES_DSN"
	envPostgresAutoMigrate = "CART_POSTGRES_AUTO_MIGRATE"
	envRedisAddr           = "CART_REDIS_ADDR"
	envMaxRetries          = "CART_MAX_RETRIES"
	envJanitorInterval     = "CART_JANITOR_INTERVAL"
	envJanitorBatchSize    = "CART_JANITOR_BATCH_SIZE"
	envKafkaBrokers        = "KAFKA_BROKERS"
	envLogLevel            = "CART_LOG_LEVEL"
)

type envLookup func(key string) (string, bool)

// readConfigFromEnv накладывает переменные окружения на app.DefaultConfig.
// Невалидные значения не роняют запуск: остаётся значение по умолчанию, ошибка уходит в warnings.
func readConfigFromEnv(lookup envLookup) (app.Config, []error) {
	cfg := app.DefaultConfig()
	var warnings []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(envGRPCAddr, &cfg.GRPCAddr)
	str(envHTTPAddr, &cfg.HTTPAddr)
	str(envMetricsAddr, &cfg.MetricsAddr)
	str(envSessionCookie, &cfg.SessionCookie)
	str(envPostgresDSN, &cfg.PostgresDSN)
	str(envRedisAddr, &cfg.RedisAddr)
	str(envKafkaBrokers, &cfg.KafkaBrokers)
	if v, ok := lookup(envStorageDriver); ok && strings.TrimSpace(v) != "" {
		cfg.StorageDriver = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(envPostgresAutoMigrate); ok {
		if parsed, err := parseBool(v); err != nil {
			warnings = append(warnings, fmt.Errorf("%s: %w", envPostgresAutoMigrate, err))
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}

	positive := func(v int) bool { return v > 0 }
	intVar := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok {
			return
		}
		parsed, err := parseInt(v, positive, "must be > 0")
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = parsed
	}
	intVar(envMaxRetries, &cfg.MaxRetries)
	intVar(envJanitorBatchSize, &cfg.JanitorBatchSize)

	positiveDuration := func(v time.Duration) bool { return v > 0 }
	durationVar := func(key string, dst *time.Duration, valid func(time.Duration) bool, rule string) {
		v, ok := lookup(key)
		if !ok {
			return
		}
		parsed, err := parseDuration(v, valid, rule)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = parsed
	}
	// TTL 0 отключает истечение сессий.
	durationVar(envSessionTTL, &cfg.SessionTTL, func(v time.Duration) bool { return v >= 0 }, "must be >= 0")
	durationVar(envJanitorInterval, &cfg.JanitorInterval, positiveDuration, "must be > 0")

	return cfg, warnings
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", raw)
	}
}

func parseInt(raw string, valid func(int) bool, rule string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid int value %q: %w", raw, err)
	}
	if !valid(value) {
		return 0, fmt.Errorf("invalid int value %d: %s", value, rule)
	}
	return value, nil
}

func parseDuration(raw string, valid func(time.Duration) bool, rule string) (time.Duration, error) {
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid duration value %q: %w", raw, err)
	}
	if !valid(value) {
		return 0, fmt.Errorf("invalid duration value %s: %s", value, rule)
	}
	return value, nil
}
