package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Theme  key.Binding
	Pause  key.Binding
	Reseed key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Theme: key.NewBinding(
			key.WithKeys("t", "T"),
			key.WithHelp("t", "theme"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p", "P"),
			key.WithHelp("space", "pause"),
		),
		Reseed: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reseed"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Pause, k.Reseed, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
