package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)
)

// renderHelpOverlay renders the full key map in a centered box.
func (m Model) renderHelpOverlay() string {
	h := m.help
	h.ShowAll = true

	content := strings.Join([]string{
		helpTitleStyle.Render("Keyboard Shortcuts"),
		h.View(m.keys),
		"",
		StatusStyle.Render("Press ? or Esc to close"),
	}, "\n")

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		helpBoxStyle.Render(content))
}

// renderFooter renders the mode line and the short key help.
func (m Model) renderFooter() string {
	peak := "off"
	if m.iface.RunningPeak() {
		peak = "on"
	}
	status := StatusStyle.Render("scale: " + m.scale.String() +
		" · units: " + m.units.String() +
		" · peak: " + peak)

	h := m.help
	h.ShowAll = false
	h.Width = m.width
	return status + "\n" + h.View(m.keys)
}
