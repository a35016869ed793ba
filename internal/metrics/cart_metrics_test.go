package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

func TestNewCartMetrics(t *testing.T) {
	metrics := NewCartMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("NewCartMetricsWithRegisterer should not return nil")
	}
	if metrics.operations == nil {
		t.Error("operations counter vec should not be nil")
	}
	if metrics.duration == nil {
		t.Error("duration histogram vec should not be nil")
	}
	if metrics.totalDue == nil {
		t.Error("totalDue histogram should not be nil")
	}
	if metrics.versionConflicts == nil {
		t.Error("versionConflicts counter should not be nil")
	}
}

func TestNewCartMetrics_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := NewCartMetricsWithRegisterer(reg)
	second := NewCartMetricsWithRegisterer(reg)

	// Повторная регистрация должна вернуть те же collectors, а не паниковать
	if first.operations != second.operations {
		t.Error("expected existing operations collector to be reused")
	}
	if first.versionConflicts != second.versionConflicts {
		t.Error("expected existing conflicts collector to be reused")
	}
}

func TestRecordOperation(t *testing.T) {
	metrics := NewCartMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordOperation("add", nil, 10*time.Millisecond)
	metrics.RecordOperation("add", nil, 20*time.Millisecond)
	metrics.RecordOperation("add", fmt.Errorf("%w: bad tax", domain.ErrValidation), time.Millisecond)

	metric := &dto.Metric{}
	if err := metrics.operations.WithLabelValues("add", ResultOK).Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected ok counter 2.0, got %f", metric.Counter.GetValue())
	}

	metric = &dto.Metric{}
	if err := metrics.operations.WithLabelValues("add", ResultValidationError).Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1.0 {
		t.Errorf("expected validation counter 1.0, got %f", metric.Counter.GetValue())
	}

	histogram := &dto.Metric{}
	observer := metrics.duration.WithLabelValues("add")
	if err := observer.(prometheus.Histogram).Write(histogram); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if histogram.Histogram.GetSampleCount() != 3 {
		t.Errorf("expected 3 samples, got %d", histogram.Histogram.GetSampleCount())
	}
}

func TestRecordTotalDueAndConflicts(t *testing.T) {
	metrics := NewCartMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordTotalDue(19.8)
	metrics.RecordTotalDue(18.81)
	metrics.RecordVersionConflict()

	histogram := &dto.Metric{}
	if err := metrics.totalDue.Write(histogram); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if histogram.Histogram.GetSampleCount() != 2 {
		t.Errorf("expected 2 samples, got %d", histogram.Histogram.GetSampleCount())
	}
	sum := histogram.Histogram.GetSampleSum()
	if sum < 38.6 || sum > 38.62 {
		t.Errorf("expected sum around 38.61, got %f", sum)
	}

	counter := &dto.Metric{}
	if err := metrics.versionConflicts.Write(counter); err != nil {
		t.Fatalf("failed to write counter: %v", err)
	}
	if counter.Counter.GetValue() != 1.0 {
		t.Errorf("expected conflicts 1.0, got %f", counter.Counter.GetValue())
	}
}

func TestResultOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ResultOK},
		{name: "validation", err: domain.ErrValidation, want: ResultValidationError},
		{name: "not found", err: domain.NewNotFoundError("item", "1"), want: ResultNotFound},
		{name: "insufficient", err: &domain.InsufficientQuantityError{ItemID: "1", Requested: 2, Available: 1}, want: ResultInsufficientQuantity},
		{name: "conflict", err: fmt.Errorf("put: %w", domain.ErrSessionVersionConflict), want: ResultConflict},
		{name: "other", err: errors.New("boom"), want: ResultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResultOf(tt.err); got != tt.want {
				t.Errorf("ResultOf() = %s, want %s", got, tt.want)
			}
		})
	}
}
