package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Apply     key.Binding
	Random    key.Binding
	Reset     key.Binding
	CopyCSS   key.Binding
	CopyReact key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "randomize"),
		),
		Reset: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "default"),
		),
		CopyCSS: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy css"),
		),
		CopyReact: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "copy react"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Apply, k.Random, k.Reset, k.CopyCSS, k.CopyReact, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Apply},
		{k.Random, k.Reset},
		{k.CopyCSS, k.CopyReact, k.Quit},
	}
}
