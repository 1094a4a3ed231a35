package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Less   key.Binding
	More   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Zero   key.Binding
	Max    key.Binding
	Marker key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Less: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "fewer args"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "more args"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab/n", "next region"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("shift+tab/p", "prev region"),
		),
		Zero: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("0", "no args"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "$"),
			key.WithHelp("$", "max args"),
		),
		Marker: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle marker"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Less, k.More, k.Next, k.Prev, k.Marker, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Less, k.More, k.Zero, k.Max},
		{k.Next, k.Prev, k.Marker, k.Quit},
	}
}
