// Package tui drives the dashboard in the terminal: it tracks the window
// size, renders the static snapshot on every frame, and exits on a quit key.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/sysfetch/collectors"
	"gitlab.com/tinyland/lab/sysfetch/display/render"
)

// Model is the top-level Bubbletea model for the sysfetch dashboard. The
// snapshot is captured before the program starts and never changes.
type Model struct {
	snapshot collectors.SystemSnapshot
	width    int
	height   int
	ready    bool
}

// NewModel returns a Model that displays snap.
func NewModel(snap collectors.SystemSnapshot) Model {
	return Model{snapshot: snap}
}

// Snapshot returns the snapshot being displayed.
func (m Model) Snapshot() collectors.SystemSnapshot {
	return m.snapshot
}

// Init implements tea.Model. No initial commands are needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It handles the quit keys and window resize
// events; any other message leaves the model untouched.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	return m, nil
}

// Frame returns the layout computed for the current window size.
func (m Model) Frame() *render.Frame {
	return render.Render(m.width, m.height, &m.snapshot)
}

// View implements tea.Model. The whole screen is redrawn from the snapshot
// at the current size.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return render.Draw(m.Frame())
}
