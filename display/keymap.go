package display

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	next    key.Binding
	prev    key.Binding
	hold    key.Binding
	dismiss key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	next: key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→/n", "next page"),
	),
	prev: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←/p", "previous page"),
	),
	hold: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "hold page"),
	),
	dismiss: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter", "dismiss"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
