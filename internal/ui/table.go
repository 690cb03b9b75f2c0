package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is selectable in printed output.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// InterfaceRow is one line of the 'bwmon interfaces' listing.
type InterfaceRow struct {
	Name      string
	Status    string // "up", "down" or "" when unknown (remote hosts)
	Default   bool   // picked by auto-detection
	RXBytes   uint64
	TXBytes   uint64
	RXPackets uint64
	TXPackets uint64
}

var interfaceColumns = []TableColumn{
	{Title: "INTERFACE", Width: 16},
	{Title: "STATE", Width: 6},
	{Title: "RX", Width: 11},
	{Title: "TX", Width: 11},
	{Title: "RX PKTS", Width: 15},
	{Title: "TX PKTS", Width: 15},
}

// RenderInterfaceTable renders interface totals. Byte totals use SI
// prefixes when decimal is set, IEC otherwise.
func RenderInterfaceTable(rows []InterfaceRow, decimal bool) string {
	if len(rows) == 0 {
		return "No interfaces found"
	}

	bytesFmt := humanize.IBytes
	if decimal {
		bytesFmt = humanize.Bytes
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		name := row.Name
		if row.Default {
			name += " *"
		}
		status := row.Status
		if status == "" {
			status = "-"
		}
		cells[i] = []string{
			name,
			status,
			bytesFmt(row.RXBytes),
			bytesFmt(row.TXBytes),
			humanize.Comma(int64(row.RXPackets)),
			humanize.Comma(int64(row.TXPackets)),
		}
	}

	return RenderSimpleTable(interfaceColumns, cells)
}
