package display

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pointage/internal/board"
	"github.com/ayoisaiah/pointage/internal/models"
)

func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return b.handleSnapshot(models.Snapshot(msg))

	case feedClosedMsg:
		return b.quit()

	case rotateMsg:
		if !b.pager.Advance(msg.generation) {
			return b, nil
		}

		return b, b.scheduleRotation()

	case clockMsg:
		b.now = b.opts.Now()
		return b, b.tickClock()

	case btimer.TickMsg, btimer.StartStopMsg:
		var cmd tea.Cmd
		b.alarm, cmd = b.alarm.Update(msg)

		return b, cmd

	case btimer.TimeoutMsg:
		if msg.ID != b.alarm.ID() || !b.queue.Showing() {
			return b, nil
		}

		b.queue.Done()

		return b, b.nextNotification()

	case tea.KeyMsg:
		return b.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.progress.Width = max(msg.Width-padding*2-4, 1)
		b.pager.Resize(b.perPage())

		return b, nil

	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := b.progress.Update(msg)
		b.progress, _ = progressModel.(progress.Model)

		return b, cmd
	}

	return b, nil
}

func (b *Board) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return b.quit()

	case key.Matches(msg, defaultKeymap.next):
		b.pager.Next()
		return b, b.rescheduleRotation()

	case key.Matches(msg, defaultKeymap.prev):
		b.pager.Prev()
		return b, b.rescheduleRotation()

	case key.Matches(msg, defaultKeymap.hold):
		b.held = !b.held

		if b.held {
			b.pager.Pause()
			return b, nil
		}

		return b, b.resumeRotation()

	case key.Matches(msg, defaultKeymap.dismiss):
		if !b.queue.Showing() {
			return b, nil
		}

		b.queue.Done()

		return b, b.nextNotification()
	}

	return b, nil
}

func (b *Board) handleSnapshot(snap models.Snapshot) (tea.Model, tea.Cmd) {
	b.snap = &snap
	b.now = b.opts.Now()
	b.pager.SetItems(snap.Listed)

	cmds := []tea.Cmd{b.waitForSnapshot()}

	if b.opts.Notify && len(snap.Notifications) > 0 {
		b.queue.Push(snap.Notifications...)

		if !b.queue.Showing() {
			cmds = append(cmds, b.nextNotification())
		}
	}

	return b, tea.Batch(cmds...)
}

// nextNotification shows the oldest pending notification with rotation
// paused, or resumes rotation once the queue is drained.
func (b *Board) nextNotification() tea.Cmd {
	ev, ok := b.queue.Next()
	if !ok {
		return b.resumeRotation()
	}

	b.pager.Pause()

	b.alarm = btimer.NewWithInterval(b.opts.NotificationDuration, alarmInterval)

	return tea.Batch(b.alarm.Init(), b.alert(ev))
}

// resumeRotation restarts rotation with a full interval unless the operator
// is holding the page or a notification is on display.
func (b *Board) resumeRotation() tea.Cmd {
	if b.held || b.queue.Showing() || !b.pager.Paused() {
		return nil
	}

	b.pager.Resume()

	return b.scheduleRotation()
}

// rescheduleRotation arms a fresh rotation timer after manual navigation.
func (b *Board) rescheduleRotation() tea.Cmd {
	if b.pager.Paused() {
		return nil
	}

	return b.scheduleRotation()
}

func (b *Board) quit() (tea.Model, tea.Cmd) {
	b.quitting = true
	b.queue.Clear()
	b.pager.Pause()
	b.opts.Feed.Unsubscribe()

	return b, tea.Quit
}

func (b *Board) perPage() int {
	return board.PerPage(
		b.height-chromeHeight,
		b.opts.ItemHeight,
		b.width-padding*2,
		b.opts.ItemWidth,
	)
}
