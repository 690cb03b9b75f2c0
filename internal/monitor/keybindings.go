package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the dashboard's keyboard shortcuts.
type keyMap struct {
	Quit  key.Binding
	Scale key.Binding
	Peak  key.Binding
	Units key.Binding
	Reset key.Binding
	Help  key.Binding
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scale, k.Peak, k.Units, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scale, k.Peak, k.Reset},
		{k.Units, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Scale: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle scale mode"),
		),
		Peak: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle running peak"),
		),
		Units: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "toggle SI/IEC units"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset peaks"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// HandleKeyMsg applies a key press to the model.
// Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Esc only closes the help overlay
	if m.showHelp && msg.String() == "esc" {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return true, nil

	case key.Matches(msg, m.keys.Scale):
		m.scale = m.scale.Next()
		return true, nil

	case key.Matches(msg, m.keys.Peak):
		m.iface.SetRunningPeak(!m.iface.RunningPeak())
		return true, nil

	case key.Matches(msg, m.keys.Units):
		m.units = m.units.Toggle()
		return true, nil

	case key.Matches(msg, m.keys.Reset):
		m.iface.ResetPeaks()
		return true, tea.ClearScreen
	}

	return false, nil
}
