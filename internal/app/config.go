package app

import "time"

// Поддерживаемые хранилища сессий.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

// Config описывает настройки запуска сервиса корзины.
type Config struct {
	GRPCAddr    string
	HTTPAddr    string
	MetricsAddr string

	// SessionCookie задаёт общий префикс namespace всех корзин (имя cookie сессии).
	SessionCookie string
	SessionTTL    time.Duration

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool
	RedisAddr           string

	// KafkaBrokers содержит брокеров через запятую. Пустая строка отключает публикацию событий.
	KafkaBrokers string

	MaxRetries       int
	JanitorInterval  time.Duration
	JanitorBatchSize int
	ShutdownTimeout  time.Duration
}

// DefaultConfig возвращает конфигурацию для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:            ":50051",
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		SessionCookie:       "laracart_session",
		SessionTTL:          24 * time.Hour,
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		RedisAddr:           "localhost:6379",
		MaxRetries:          3,
		JanitorInterval:     time.Minute,
		JanitorBatchSize:    500,
		ShutdownTimeout:     5 * time.Second,
	}
}
