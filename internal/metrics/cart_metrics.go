package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// Значения label result.
const (
	ResultOK                   = "ok"
	ResultValidationError      = "validation_error"
	ResultNotFound             = "not_found"
	ResultInsufficientQuantity = "insufficient_quantity"
	ResultConflict             = "conflict"
	ResultError                = "error"
)

// CartMetrics содержит метрики операций корзины.
type CartMetrics struct {
	operations       *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	totalDue         prometheus.Histogram
	versionConflicts prometheus.Counter
}

// NewCartMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewCartMetrics() *CartMetrics {
	return NewCartMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCartMetricsWithRegisterer регистрирует метрики в переданном registerer (изолированно в тестах).
func NewCartMetricsWithRegisterer(registerer prometheus.Registerer) *CartMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CartMetrics{
		operations: register(registerer, "cart_operations_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations by result",
		}, []string{"operation", "result"})),
		duration: register(registerer, "cart_operation_duration_seconds", prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cart_operation_duration_seconds",
			Help:    "Duration of cart operations including session store round-trips",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"operation"})),
		totalDue: register(registerer, "cart_total_due", prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cart_total_due",
			Help:    "Distribution of computed cart totals due",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		})),
		versionConflicts: register(registerer, "cart_session_version_conflicts_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cart_session_version_conflicts_total",
			Help: "Total number of optimistic locking conflicts on session keys",
		})),
	}
}

// register регистрирует collector; при повторной регистрации возвращает уже существующий.
func register[C prometheus.Collector](registerer prometheus.Registerer, name string, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", name))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %q: %v", name, err))
	}
	return collector
}

// RecordOperation учитывает завершённую операцию и её длительность.
func (m *CartMetrics) RecordOperation(operation string, err error, duration time.Duration) {
	m.operations.WithLabelValues(operation, ResultOf(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordTotalDue записывает посчитанный итог к оплате.
func (m *CartMetrics) RecordTotalDue(totalDue float64) {
	m.totalDue.Observe(totalDue)
}

// RecordVersionConflict увеличивает счётчик конфликтов optimistic locking.
func (m *CartMetrics) RecordVersionConflict() {
	m.versionConflicts.Inc()
}

// ResultOf классифицирует ошибку операции для label result.
func ResultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrValidation):
		return ResultValidationError
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return ResultInsufficientQuantity
	case errors.Is(err, domain.ErrSessionVersionConflict):
		return ResultConflict
	default:
		return ResultError
	}
}
