package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the launcher. The URL input keeps
// focus the whole time, so every chord here must stay clear of ordinary
// typing.
type KeyMap struct {
	Submit        key.Binding
	ToggleBackend key.Binding
	CopyTarget    key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open URL"),
		),
		ToggleBackend: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch backend"),
		),
		CopyTarget: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy last target"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ToggleBackend, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.ToggleBackend},
		{k.CopyTarget, k.Help, k.Quit},
	}
}
