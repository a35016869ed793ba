package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/cart/internal/health"
	"github.com/vladislavdragonenkov/cart/internal/storage/memory"
	"github.com/vladislavdragonenkov/cart/internal/storage/postgres"
	"github.com/vladislavdragonenkov/cart/internal/storage/redisstore"
)

// runtimeDependencies держит хранилище сессий, выбранное по Config.StorageDriver.
type runtimeDependencies struct {
	store domain.SessionStore
	// purger не nil только у хранилищ без собственного TTL.
	purger         domain.ExpiredSessionPurger
	storageChecker healthcheck.Checker
	closeFn        func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	switch driver {
	case StorageDriverMemory:
		store := memory.NewSessionStore(cfg.SessionTTL)
		logger.Info("using in-memory session store")
		return &runtimeDependencies{
			store:          store,
			purger:         store,
			storageChecker: healthcheck.NewPingChecker("storage", store),
		}, nil

	case StorageDriverPostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return nil, fmt.Errorf("postgres storage requires dsn")
		}
		pg, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if cfg.PostgresAutoMigrate {
			if err := pg.EnsureSchema(ctx); err != nil {
				_ = pg.Close()
				return nil, fmt.Errorf("apply postgres migrations: %w", err)
			}
		}
		store := postgres.NewSessionStore(pg, cfg.SessionTTL)
		logger.Info("using postgres session store")
		return &runtimeDependencies{
			store:          store,
			purger:         store,
			storageChecker: healthcheck.NewPingChecker("storage", store),
			closeFn:        pg.Close,
		}, nil

	case StorageDriverRedis:
		client, err := redisstore.Open(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		store := redisstore.NewSessionStore(client, cfg.SessionTTL)
		logger.WithField("addr", cfg.RedisAddr).Info("using redis session store")
		return &runtimeDependencies{
			store:          store,
			storageChecker: healthcheck.NewPingChecker("storage", store),
			closeFn:        client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func (d *runtimeDependencies) close(logger *log.Entry) {
	if d == nil || d.closeFn == nil {
		return
	}
	if err := d.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close session store")
	}
}
