package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/bwmon/internal/graph"
	"github.com/rileyhilliard/bwmon/internal/units"
)

// renderDashboard draws the header, the RX panel growing up, the TX panel
// mirrored below it growing down, the statistics and the footer.
func (m Model) renderDashboard() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.tooSmall {
		return m.renderTooSmall()
	}

	rxScale, txScale := m.iface.Scales(m.scale)
	rx := graph.Draw(m.iface.RX.Buffer.Values(), rxScale, m.graphRows, m.width)
	tx := graph.Draw(m.iface.TX.Buffer.Values(), txScale, m.graphRows, m.width)

	var lines []string
	lines = append(lines, m.renderHeader())
	lines = append(lines, m.renderPanel(rx, RXStyle, false)...)
	lines = append(lines, m.renderPanel(tx, TXStyle, true)...)
	lines = append(lines, m.renderStats())
	lines = append(lines, m.renderFooter())

	return strings.Join(lines, "\n")
}

func (m Model) renderHeader() string {
	title := "interface: " + m.iface.Name
	if m.opts.Host != "" {
		title += " @ " + m.opts.Host
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, HeaderStyle.Render(title))
}

// renderPanel converts a panel into terminal lines, top line first. The max
// label sits on the full-height edge and the baseline label on the empty one.
func (m Model) renderPanel(p graph.Panel, fill lipgloss.Style, mirrored bool) []string {
	rows := p.Grid.Rows()
	maxLabel := units.FormatRate(p.Max, m.units)
	baseLabel := units.FormatRate(p.Baseline, m.units)

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		// Grid row 0 is the empty edge; RX prints it last, TX first.
		r := rows - 1 - i
		if mirrored {
			r = i
		}

		label := ""
		switch r {
		case rows - 1:
			label = maxLabel
		case 0:
			label = baseLabel
		}
		lines = append(lines, m.renderRow(p.Grid, r, label, fill))
	}
	return lines
}

func (m Model) renderRow(g graph.Grid, r int, label string, fill lipgloss.Style) string {
	glyph := GlyphFilled
	if m.opts.ASCII {
		glyph = GlyphFilledASCII
	}

	var b strings.Builder
	start := 0
	if label != "" {
		if len(label) > g.Cols() {
			label = label[:g.Cols()]
		}
		b.WriteString(AxisLabelStyle.Render(label))
		start = len(label)
	}

	var cells strings.Builder
	for c := start; c < g.Cols(); c++ {
		if g.Filled(r, c) {
			cells.WriteString(glyph)
		} else {
			cells.WriteString(GlyphEmpty)
		}
	}
	b.WriteString(fill.Render(cells.String()))
	return b.String()
}

// renderStats shows current, max or peak, avg, min and total per direction.
func (m Model) renderStats() string {
	half := m.width / 2
	rx := m.renderChannelStats("RX:", m.iface.RX, RXStyle)
	tx := m.renderChannelStats("TX:", m.iface.TX, TXStyle)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(rx),
		lipgloss.NewStyle().Width(m.width-half).Render(tx))
}

func (m Model) renderChannelStats(title string, ch *Channel, accent lipgloss.Style) string {
	maxName := "max:"
	if ch.Tracker.Running {
		maxName = "peak:"
	}
	rows := [][2]string{
		{title, units.FormatRate(ch.Current(), m.units)},
		{maxName, units.FormatRate(ch.Stats.Max, m.units)},
		{"avg:", units.FormatRate(ch.Stats.Avg, m.units)},
		{"min:", units.FormatRate(ch.Stats.Min, m.units)},
		{"total:", units.Format(float64(ch.Total), m.units)},
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		name := StatLabelStyle.Render(row[0])
		if i == 0 {
			name = accent.Width(StatLabelStyle.GetWidth()).Render(row[0])
		}
		lines[i] = name + StatValueStyle.Render(row[1])
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTooSmall() string {
	minRows := MinGraphRows
	if m.opts.Lines > minRows {
		minRows = m.opts.Lines
	}
	msg := WarningStyle.Render("Terminal too small") + "\n" +
		StatusStyle.Render(fmt.Sprintf("need at least %dx%d, have %dx%d",
			MinWidth, 2*minRows+reservedLines, m.width, m.height))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}
