package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/pointage/internal/attendance"
	"github.com/ayoisaiah/pointage/internal/models"
)

const defaultBuffer = 4

// SnapshotStore persists the last good snapshot of each session.
type SnapshotStore interface {
	SaveSnapshot(snap *models.Snapshot) error
	LastSnapshot(sessionID string) (*models.Snapshot, error)
}

// Options configures a Hub.
type Options struct {
	Clock    clockwork.Clock
	Store    SnapshotStore
	Policy   attendance.Policy
	Interval time.Duration
	// Buffer is the number of snapshots a subscriber may fall behind before
	// the oldest pending one is dropped.
	Buffer int
}

// Hub runs one refresh loop per watched session and fans its snapshots out
// to subscribers.
type Hub struct {
	fetcher  *Fetcher
	sessions map[string]*loop
	opts     Options
	mu       sync.Mutex
}

type loop struct {
	cancel context.CancelFunc
	done   chan struct{}
	subs   map[*Subscription]struct{}
	latest *models.Snapshot
	prev   *attendance.Result
	sched  *Scheduler
	id     string
}

// Subscription receives the snapshots of one session.
type Subscription struct {
	hub       *Hub
	ch        chan models.Snapshot
	sessionID string
	once      sync.Once
}

// NewHub returns a hub that fetches sessions with f.
func NewHub(f *Fetcher, opts Options) *Hub {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	if opts.Policy == nil {
		opts.Policy = attendance.NewlyListed{}
	}

	if opts.Buffer < 1 {
		opts.Buffer = defaultBuffer
	}

	return &Hub{
		fetcher:  f,
		opts:     opts,
		sessions: make(map[string]*loop),
	}
}

// Subscribe registers a subscriber for sessionID. The first subscriber
// starts the session's refresh loop. The latest known snapshot, if any, is
// delivered immediately.
func (h *Hub) Subscribe(sessionID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscription{
		hub:       h,
		sessionID: sessionID,
		ch:        make(chan models.Snapshot, h.opts.Buffer),
	}

	l, ok := h.sessions[sessionID]
	if !ok {
		l = h.start(sessionID)
		h.sessions[sessionID] = l
	}

	l.subs[sub] = struct{}{}

	if l.latest != nil {
		sub.deliver(l.latest.Clone())
	}

	return sub
}

// Latest returns the most recent snapshot of sessionID, falling back to the
// store when the session is not being watched.
func (h *Hub) Latest(sessionID string) (models.Snapshot, bool) {
	h.mu.Lock()
	l, ok := h.sessions[sessionID]

	if ok && l.latest != nil {
		snap := l.latest.Clone()
		h.mu.Unlock()

		return snap, true
	}

	h.mu.Unlock()

	last := h.seed(sessionID)
	if last == nil {
		return models.Snapshot{}, false
	}

	return *last, true
}

// Close stops every running loop and waits for them to return.
func (h *Hub) Close() {
	h.mu.Lock()

	loops := make([]*loop, 0, len(h.sessions))

	for id, l := range h.sessions {
		l.cancel()

		for sub := range l.subs {
			close(sub.ch)
		}

		loops = append(loops, l)

		delete(h.sessions, id)
	}

	h.mu.Unlock()

	for _, l := range loops {
		<-l.done
	}
}

// start must be called with h.mu held.
func (h *Hub) start(sessionID string) *loop {
	ctx, cancel := context.WithCancel(context.Background())

	l := &loop{
		id:     sessionID,
		cancel: cancel,
		done:   make(chan struct{}),
		subs:   make(map[*Subscription]struct{}),
		latest: h.seed(sessionID),
	}

	l.sched = NewScheduler(
		h.opts.Clock,
		h.opts.Interval,
		func(ctx context.Context) (*attendance.Result, error) {
			return h.fetcher.Fetch(ctx, sessionID)
		},
	)

	go func() {
		defer close(l.done)

		l.sched.Run(ctx, func(out Outcome) {
			h.publish(ctx, l, out)
		})
	}()

	slog.Info("watching session", slog.String("session", sessionID))

	return l
}

// seed loads the last good snapshot of a session, marked stale.
func (h *Hub) seed(sessionID string) *models.Snapshot {
	if h.opts.Store == nil {
		return nil
	}

	snap, err := h.opts.Store.LastSnapshot(sessionID)
	if err != nil {
		slog.Warn(
			"unable to load last snapshot",
			slog.String("session", sessionID),
			slog.Any("error", err),
		)

		return nil
	}

	if snap == nil {
		return nil
	}

	snap.Stale = true
	snap.Notifications = nil

	return snap
}

func (h *Hub) publish(ctx context.Context, l *loop, out Outcome) {
	var snap models.Snapshot

	if out.Err != nil {
		slog.Error(
			"refresh cycle failed",
			slog.String("session", l.id),
			slog.Any("error", out.Err),
		)

		h.mu.Lock()
		snap = failedSnapshot(l.id, l.latest, out.Err)
		h.mu.Unlock()
	} else {
		events := h.opts.Policy.Events(l.prev, out.Result, out.At)
		l.prev = out.Result
		snap = NewSnapshot(l.id, out.Result, events, out.At)

		h.persist(&snap)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	l.latest = &snap

	for sub := range l.subs {
		sub.deliver(snap.Clone())
	}
}

func (h *Hub) persist(snap *models.Snapshot) {
	if h.opts.Store == nil {
		return
	}

	if err := h.opts.Store.SaveSnapshot(snap); err != nil {
		slog.Warn(
			"unable to save snapshot",
			slog.String("session", snap.SessionID),
			slog.Any("error", err),
		)
	}
}

// Updates returns the channel snapshots are delivered on. It is closed once
// the subscription ends.
func (s *Subscription) Updates() <-chan models.Snapshot {
	return s.ch
}

// SessionID returns the session the subscription follows.
func (s *Subscription) SessionID() string {
	return s.sessionID
}

// Unsubscribe ends the subscription. The last subscriber of a session stops
// its refresh loop and waits for it to return. It is safe to call more than
// once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		h := s.hub

		h.mu.Lock()

		l, ok := h.sessions[s.sessionID]
		if !ok {
			h.mu.Unlock()
			return
		}

		if _, subscribed := l.subs[s]; !subscribed {
			h.mu.Unlock()
			return
		}

		delete(l.subs, s)
		close(s.ch)

		last := len(l.subs) == 0
		if last {
			l.cancel()
			delete(h.sessions, s.sessionID)
		}

		h.mu.Unlock()

		if last {
			<-l.done

			slog.Info("stopped watching session", slog.String("session", s.sessionID))
		}
	})
}

// deliver sends snap without blocking, dropping the oldest pending snapshot
// when the subscriber has fallen behind. Callers hold the hub lock.
func (s *Subscription) deliver(snap models.Snapshot) {
	for {
		select {
		case s.ch <- snap:
			return
		default:
		}

		select {
		case <-s.ch:
		default:
		}
	}
}
