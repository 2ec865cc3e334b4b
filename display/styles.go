package display

import "github.com/charmbracelet/lipgloss"

type styles struct {
	base     lipgloss.Style
	title    lipgloss.Style
	hint     lipgloss.Style
	banner   lipgloss.Style
	stale    lipgloss.Style
	item     lipgloss.Style
	present  lipgloss.Style
	late     lipgloss.Style
	absent   lipgloss.Style
	excused  lipgloss.Style
	card     lipgloss.Style
	allClear lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#1A1A1A")
	muted := lipgloss.Color("#6B6B6B")

	if dark {
		fg = lipgloss.Color("#F2F2F2")
		muted = lipgloss.Color("#8A8A8A")
	}

	green := lipgloss.Color("#3FB950")
	yellow := lipgloss.Color("#D29922")
	red := lipgloss.Color("#F85149")
	blue := lipgloss.Color("#58A6FF")

	return styles{
		base:  lipgloss.NewStyle().Padding(1, padding),
		title: lipgloss.NewStyle().Bold(true).Foreground(fg),
		hint:  lipgloss.NewStyle().Foreground(muted),
		banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(red).
			Padding(0, 1),
		stale:   lipgloss.NewStyle().Foreground(yellow).Italic(true),
		item:    lipgloss.NewStyle().Foreground(fg),
		present: lipgloss.NewStyle().Foreground(green),
		late:    lipgloss.NewStyle().Foreground(yellow),
		absent:  lipgloss.NewStyle().Foreground(red),
		excused: lipgloss.NewStyle().Foreground(blue),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(yellow).
			Padding(1, 3),
		allClear: lipgloss.NewStyle().Bold(true).Foreground(green),
	}
}
