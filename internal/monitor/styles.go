package monitor

import "github.com/charmbracelet/lipgloss"

// Dashboard palette. With --no-colors the renderer runs with the ASCII
// profile and these collapse to plain text.
const (
	ColorRX            = lipgloss.Color("#39FF14") // neon green
	ColorTX            = lipgloss.Color("#FF0055") // hot red
	ColorAccent        = lipgloss.Color("#FF2E97")
	ColorBorder        = lipgloss.Color("#2A2A4A")
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")
	ColorWarning       = lipgloss.Color("#FFAA00")
)

// Graph glyphs
const (
	GlyphFilled      = "█"
	GlyphFilledASCII = "*"
	GlyphEmpty       = " "
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	RXStyle = lipgloss.NewStyle().Foreground(ColorRX)
	TXStyle = lipgloss.NewStyle().Foreground(ColorTX)

	// AxisLabelStyle is drawn over the graph edges.
	AxisLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Width(7)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)
