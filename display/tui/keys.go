package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the dashboard. Every other key is
// ignored.
type keyMap struct {
	Quit key.Binding
}

// ShortHelp returns the bindings shown in help output.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns the expanded binding groups.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
}
