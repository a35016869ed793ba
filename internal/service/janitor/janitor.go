package janitor

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

const (
	defaultInterval  = 5 * time.Minute
	defaultBatchSize = 500
)

var (
	purgeRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_session_purge_runs_total",
		Help: "Total number of expired session purge runs grouped by result.",
	}, []string{"result"})
	purgedKeysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_session_purged_keys_total",
		Help: "Total number of expired session keys removed from storage.",
	})
)

// Option настраивает Janitor.
type Option func(*Janitor)

// WithLogger задает logger.
func WithLogger(logger *log.Entry) Option {
	return func(j *Janitor) {
		if logger != nil {
			j.logger = logger
		}
	}
}

// WithInterval задает паузу между проходами.
func WithInterval(interval time.Duration) Option {
	return func(j *Janitor) {
		if interval > 0 {
			j.interval = interval
		}
	}
}

// WithBatchSize задает, сколько ключей удаляется за один запрос к хранилищу.
func WithBatchSize(size int) Option {
	return func(j *Janitor) {
		if size > 0 {
			j.batchSize = size
		}
	}
}

// Janitor периодически вычищает просроченные ключи сессий из хранилищ,
// у которых нет собственного TTL (postgres, memory).
type Janitor struct {
	purger    domain.ExpiredSessionPurger
	logger    *log.Entry
	interval  time.Duration
	batchSize int
}

// New создает Janitor поверх purger.
func New(purger domain.ExpiredSessionPurger, options ...Option) *Janitor {
	j := &Janitor{
		purger:    purger,
		logger:    log.WithField("component", "session-janitor"),
		interval:  defaultInterval,
		batchSize: defaultBatchSize,
	}
	for _, option := range options {
		option(j)
	}
	return j
}

// Run выполняет проход сразу и затем по таймеру, пока ctx не отменен.
func (j *Janitor) Run(ctx context.Context) {
	if j.purger == nil {
		j.logger.Warn("session janitor is disabled: storage does not expire keys")
		return
	}

	j.pass(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.pass(ctx)
		}
	}
}

func (j *Janitor) pass(ctx context.Context) {
	purged, err := j.Purge(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		purgeRunsTotal.WithLabelValues("error").Inc()
		j.logger.WithError(err).Warn("session purge failed")
		return
	}

	purgeRunsTotal.WithLabelValues("ok").Inc()
	if purged > 0 {
		j.logger.WithField("purged", purged).Info("expired sessions purged")
	}
}

// Purge удаляет все просроченные ключи порциями по batchSize.
func (j *Janitor) Purge(ctx context.Context) (int, error) {
	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		deleted, err := j.purger.DeleteExpired(ctx, j.batchSize)
		if err != nil {
			return total, err
		}
		total += deleted
		purgedKeysTotal.Add(float64(deleted))

		if deleted < j.batchSize {
			return total, nil
		}
	}
}
