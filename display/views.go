package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pointage/internal/models"
	"github.com/ayoisaiah/pointage/internal/timeutil"
)

func (b *Board) View() string {
	if b.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(b.headerView())
	s.WriteString("\n\n")

	switch {
	case b.queue.Showing():
		s.WriteString(b.notificationView())
	case b.snap == nil:
		s.WriteString(b.styles.hint.Render("waiting for the first refresh…"))
	case b.pager.AllClear():
		s.WriteString(b.styles.allClear.Render("All clear: nobody is missing"))
	default:
		s.WriteString(b.pageView())
	}

	s.WriteString("\n\n")
	s.WriteString(b.footerView())

	return b.styles.base.Render(s.String())
}

func (b *Board) headerView() string {
	if b.snap == nil {
		return b.styles.title.Render("pointage")
	}

	sess := &b.snap.Session
	layout := timeutil.ClockFormat(b.opts.TwentyFourHour)

	var s strings.Builder

	s.WriteString(b.styles.title.Render(sess.Title))
	s.WriteString(b.styles.hint.Render(fmt.Sprintf(
		"  %s → %s (late until %s)",
		sess.Start.Format(layout),
		sess.End.Format(layout),
		sess.LateUntil().Format(layout),
	)))

	c := b.snap.Counts

	s.WriteString("\n")
	s.WriteString(strings.Join([]string{
		b.styles.present.Render(fmt.Sprintf("%d present", c.Present)),
		b.styles.late.Render(fmt.Sprintf("%d late", c.Late)),
		b.styles.absent.Render(fmt.Sprintf("%d absent", c.Absent)),
		b.styles.excused.Render(fmt.Sprintf("%d excused", c.Excused)),
	}, b.styles.hint.Render(" · ")))

	s.WriteString("\n")
	s.WriteString(b.styles.hint.Render(
		"refreshed " + timeutil.Ago(b.now, b.snap.RefreshedAt),
	))

	if b.snap.Stale {
		s.WriteString(" " + b.styles.stale.Render("(last known state)"))
	}

	if b.snap.Error != "" {
		s.WriteString("\n")
		s.WriteString(b.styles.banner.Render(b.snap.Error))
	}

	return s.String()
}

func (b *Board) pageView() string {
	page := b.pager.Current()

	cols := max((b.width-padding*2)/b.opts.ItemWidth, 1)

	var rows []string

	for start := 0; start < len(page.Items); start += cols {
		end := min(start+cols, len(page.Items))

		cells := make([]string, 0, end-start)

		for i := start; i < end; i++ {
			cells = append(cells, b.itemView(&page.Items[i]))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *Board) itemView(l *models.Listed) string {
	width := b.opts.ItemWidth
	name := truncate(l.Member.DisplayName(), width-1)

	lines := []string{b.statusStyle(l.Status).Render(name)}

	if b.opts.ItemHeight > 1 {
		detail := l.Member.Matricule

		if !l.PunchedAt.IsZero() {
			detail += " · " + l.PunchedAt.Format(timeutil.ClockFormat(b.opts.TwentyFourHour))
		}

		lines = append(lines, b.styles.hint.Render(truncate(detail, width-1)))
	}

	return b.styles.item.
		Width(width).
		Height(b.opts.ItemHeight).
		Render(strings.Join(lines, "\n"))
}

func (b *Board) notificationView() string {
	ev, _ := b.queue.Current()

	title, body := notificationText(&ev)

	var s strings.Builder

	s.WriteString(b.statusStyle(ev.Status).Bold(true).Render(title))
	s.WriteString("\n\n")
	s.WriteString(body)
	s.WriteString("\n\n")

	percent := 1.0
	if b.opts.NotificationDuration > 0 {
		percent = float64(b.alarm.Timeout) / float64(b.opts.NotificationDuration)
	}

	s.WriteString(b.progress.ViewAs(min(max(percent, 0), 1)))

	if n := b.queue.Len(); n > 0 {
		s.WriteString("\n")
		s.WriteString(b.styles.hint.Render(fmt.Sprintf("%d more waiting", n)))
	}

	return b.styles.card.Render(s.String())
}

func (b *Board) footerView() string {
	var s strings.Builder

	if page := b.pager.Current(); page.Total > 1 {
		s.WriteString(b.styles.hint.Render(
			fmt.Sprintf("page %d/%d", page.Index+1, page.Total),
		))

		if b.held {
			s.WriteString(b.styles.stale.Render(" [held]"))
		}

		s.WriteString("\n")
	}

	s.WriteString(b.help.ShortHelpView([]key.Binding{
		defaultKeymap.next,
		defaultKeymap.prev,
		defaultKeymap.hold,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (b *Board) statusStyle(s models.Status) lipgloss.Style {
	switch s {
	case models.StatusPresent:
		return b.styles.present
	case models.StatusLate:
		return b.styles.late
	case models.StatusExcused:
		return b.styles.excused
	}

	return b.styles.absent
}

// notificationText returns the title and body shown for ev.
func notificationText(ev *models.NotificationEvent) (title, body string) {
	name := ev.Member.DisplayName()

	switch ev.Kind {
	case models.NotifyArrival:
		title = fmt.Sprintf("%s has arrived", name)
	default:
		title = fmt.Sprintf("%s is %s", name, ev.Status)
	}

	body = ev.Member.Matricule
	if ev.Member.Group != "" {
		body += " · " + ev.Member.Group
	}

	return title, body
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width < 1 || len(r) <= width {
		return s
	}

	if width == 1 {
		return "…"
	}

	return string(r[:width-1]) + "…"
}
