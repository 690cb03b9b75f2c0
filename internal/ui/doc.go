// Package ui holds the small pieces of styled terminal output used outside
// the dashboard: the ANSI palette, status symbols and the interface table
// printed by 'bwmon interfaces'.
//
// Colors are ANSI codes so they follow the terminal theme. DisableColors
// switches lipgloss to the ASCII profile for --no-colors.
package ui
