package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunAtStart(t *testing.T) {
	var calls atomic.Int32

	s := New()
	s.NewIntervalJob("job", func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, time.Hour, true)

	s.Start()

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	s.Stop()
}

func TestScheduler_TicksOnInterval(t *testing.T) {
	var calls atomic.Int32

	s := New()
	s.NewIntervalJob("job", func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, 20*time.Millisecond, false)

	s.Start()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 10*time.Millisecond)

	s.Stop()
}

func TestScheduler_StopWaitsForJobs(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool

	s := New()
	s.NewIntervalJob("job", func(ctx context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return nil
	}, time.Hour, true)

	s.Start()
	<-started
	s.Stop()

	assert.True(t, finished.Load())
}
