package refresh

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/pointage/internal/attendance"
)

// DefaultInterval is the time between two reconciliation cycles.
const DefaultInterval = 10 * time.Second

// State is the state of a scheduler.
type State int32

const (
	Idle State = iota
	Fetching
)

func (s State) String() string {
	if s == Fetching {
		return "fetching"
	}

	return "idle"
}

// Task performs one reconciliation cycle.
type Task func(ctx context.Context) (*attendance.Result, error)

// Outcome is the completed result of a task.
type Outcome struct {
	At     time.Time
	Err    error
	Result *attendance.Result
}

// Scheduler runs a task periodically. A tick that fires while the previous
// task is still running is skipped, so at most one task is ever in flight.
type Scheduler struct {
	clock    clockwork.Clock
	task     Task
	interval time.Duration
	state    atomic.Int32
	skipped  atomic.Int64
}

// NewScheduler returns a scheduler that runs task every interval. A nil
// clock uses the real one.
func NewScheduler(
	clock clockwork.Clock,
	interval time.Duration,
	task Task,
) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Scheduler{
		clock:    clock,
		interval: interval,
		task:     task,
	}
}

// State returns the current state of the scheduler.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Skipped returns the number of ticks dropped because a task was in flight.
func (s *Scheduler) Skipped() int64 {
	return s.skipped.Load()
}

// Run starts a task immediately and then on every tick until ctx is
// cancelled. handle receives each outcome on the calling goroutine. Outcomes
// of tasks that complete after cancellation are discarded, and Run does not
// return before the in-flight task has.
func (s *Scheduler) Run(ctx context.Context, handle func(Outcome)) {
	defer s.state.Store(int32(Idle))

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	done := make(chan Outcome, 1)
	inFlight := false

	start := func() {
		inFlight = true

		s.state.Store(int32(Fetching))

		wg.Add(1)

		go func() {
			defer wg.Done()

			res, err := s.task(ctx)

			done <- Outcome{
				Result: res,
				Err:    err,
				At:     s.clock.Now(),
			}
		}()
	}

	start()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if inFlight {
				s.skipped.Add(1)
				slog.Debug("refresh tick skipped: previous cycle still running")

				continue
			}

			start()
		case out := <-done:
			inFlight = false

			s.state.Store(int32(Idle))

			if ctx.Err() != nil {
				return
			}

			handle(out)
		}
	}
}
