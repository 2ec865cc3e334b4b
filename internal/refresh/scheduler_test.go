package refresh

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pointage/internal/attendance"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func TestSchedulerSkipsTicksWhileFetching(t *testing.T) {
	fc := clockwork.NewFakeClock()
	release := make(chan struct{})

	var runs atomic.Int32

	s := NewScheduler(fc, 10*time.Second, func(ctx context.Context) (*attendance.Result, error) {
		runs.Add(1)

		select {
		case <-release:
		case <-ctx.Done():
		}

		return &attendance.Result{}, nil
	})

	var handled atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})

	go func() {
		defer close(finished)

		s.Run(ctx, func(Outcome) { handled.Add(1) })
	}()

	fc.BlockUntil(1)

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, waitFor, tick)
	assert.Equal(t, Fetching, s.State())

	fc.Advance(10 * time.Second)

	assert.Eventually(t, func() bool { return s.Skipped() == 1 }, waitFor, tick)
	assert.Equal(t, int32(1), runs.Load())

	release <- struct{}{}

	assert.Eventually(t, func() bool { return handled.Load() == 1 }, waitFor, tick)
	assert.Eventually(t, func() bool { return s.State() == Idle }, waitFor, tick)

	fc.Advance(10 * time.Second)

	assert.Eventually(t, func() bool { return runs.Load() == 2 }, waitFor, tick)

	release <- struct{}{}

	assert.Eventually(t, func() bool { return handled.Load() == 2 }, waitFor, tick)

	cancel()
	<-finished
}

func TestSchedulerDiscardsResultsAfterCancel(t *testing.T) {
	fc := clockwork.NewFakeClock()
	started := make(chan struct{})

	var once sync.Once

	s := NewScheduler(fc, time.Second, func(ctx context.Context) (*attendance.Result, error) {
		once.Do(func() { close(started) })

		<-ctx.Done()

		return &attendance.Result{}, nil
	})

	var handled atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})

	go func() {
		defer close(finished)

		s.Run(ctx, func(Outcome) { handled.Add(1) })
	}()

	<-started
	cancel()

	select {
	case <-finished:
	case <-time.After(waitFor):
		t.Fatal("Run did not return after cancellation")
	}

	assert.Zero(t, handled.Load())
	assert.Equal(t, Idle, s.State())
}

func TestSchedulerReportsFailures(t *testing.T) {
	fc := clockwork.NewFakeClock()

	s := NewScheduler(fc, time.Second, func(context.Context) (*attendance.Result, error) {
		return nil, errUnavailable
	})

	outcomes := make(chan Outcome, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.Run(ctx, func(out Outcome) {
		select {
		case outcomes <- out:
		default:
		}
	})

	select {
	case out := <-outcomes:
		require.ErrorIs(t, out.Err, errUnavailable)
		assert.Nil(t, out.Result)
		assert.Equal(t, fc.Now(), out.At)
	case <-time.After(waitFor):
		t.Fatal("no outcome delivered")
	}
}
