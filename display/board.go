// Package display renders the live attendance board of one session in the
// terminal. Listed members are shown a page at a time on a rotation timer
// while notifications interrupt the rotation one by one.
package display

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pointage/internal/board"
	"github.com/ayoisaiah/pointage/internal/models"
)

const (
	defaultRotation     = 15 * time.Second
	defaultNotification = 5 * time.Second
	alarmInterval       = 100 * time.Millisecond

	// lines used by the header and footer around a page
	chromeHeight = 8
	padding      = 2
)

// Feed is a live stream of snapshots for one session.
type Feed interface {
	Updates() <-chan models.Snapshot
	Unsubscribe()
}

// Options configures a Board.
type Options struct {
	Feed                 Feed
	Now                  func() time.Time
	Cmd                  string
	RotationInterval     time.Duration
	NotificationDuration time.Duration
	ItemHeight           int
	ItemWidth            int
	TwentyFourHour       bool
	DarkTheme            bool
	Notify               bool
	Desktop              bool
}

// Board is the bubbletea model of the attendance board.
type Board struct {
	opts     Options
	snap     *models.Snapshot
	pager    *board.Pager
	queue    board.Queue
	styles   styles
	help     help.Model
	progress progress.Model
	alarm    btimer.Model
	now      time.Time
	width    int
	height   int
	held     bool
	quitting bool
}

// New returns a board reading snapshots from opts.Feed.
func New(opts Options) *Board {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.RotationInterval <= 0 {
		opts.RotationInterval = defaultRotation
	}

	if opts.NotificationDuration <= 0 {
		opts.NotificationDuration = defaultNotification
	}

	opts.ItemHeight = max(opts.ItemHeight, 1)
	opts.ItemWidth = max(opts.ItemWidth, 1)

	return &Board{
		opts:     opts,
		pager:    board.NewPager(1),
		styles:   newStyles(opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		now:      opts.Now(),
	}
}

func (b *Board) Init() tea.Cmd {
	return tea.Batch(
		b.waitForSnapshot(),
		b.scheduleRotation(),
		b.tickClock(),
	)
}

type (
	snapshotMsg   models.Snapshot
	feedClosedMsg struct{}
	clockMsg      time.Time
	rotateMsg     struct {
		generation int
	}
)

// waitForSnapshot blocks on the feed until the next snapshot arrives.
func (b *Board) waitForSnapshot() tea.Cmd {
	ch := b.opts.Feed.Updates()

	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return feedClosedMsg{}
		}

		return snapshotMsg(snap)
	}
}

// scheduleRotation arms the rotation timer for the current generation.
func (b *Board) scheduleRotation() tea.Cmd {
	gen := b.pager.Generation()

	return tea.Tick(b.opts.RotationInterval, func(time.Time) tea.Msg {
		return rotateMsg{generation: gen}
	})
}

func (b *Board) tickClock() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}
