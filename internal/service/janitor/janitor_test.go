package janitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

var _ domain.ExpiredSessionPurger = (*stubPurger)(nil)

type stubPurger struct {
	mu      sync.Mutex
	results []int
	errs    []error
	calls   int
}

func (s *stubPurger) DeleteExpired(_ context.Context, _ int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return 0, err
		}
	}
	if len(s.results) == 0 {
		return 0, nil
	}
	n := s.results[0]
	s.results = s.results[1:]
	return n, nil
}

func (s *stubPurger) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestPurge_Batches(t *testing.T) {
	t.Parallel()

	purger := &stubPurger{results: []int{2, 2, 1}}
	j := New(purger, WithBatchSize(2))

	purged, err := j.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, purged)
	assert.Equal(t, 3, purger.callCount())
}

func TestPurge_Error(t *testing.T) {
	t.Parallel()

	purger := &stubPurger{errs: []error{errors.New("boom")}}
	j := New(purger, WithBatchSize(10))

	purged, err := j.Purge(context.Background())
	require.Error(t, err)
	assert.Zero(t, purged)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	purger := &stubPurger{}
	j := New(purger, WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		j.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop on context cancel")
	}
	assert.Positive(t, purger.callCount())
}

func TestRun_NilPurger(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		New(nil).Run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor without purger must return immediately")
	}
}
