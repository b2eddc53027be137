package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Shared palette.
var (
	ColorAccent = lipgloss.Color("12")
	ColorMuted  = lipgloss.Color("240")
)

// Shared styles.
var (
	SectionTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	MutedTextStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Align(lipgloss.Center)

	TableBorderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TableCellStyle = lipgloss.NewStyle().
		Padding(0, 1)
)

// NewAssociationTable creates a table with the default association styling.
func NewAssociationTable(headers ...string) *table.Table {
	return table.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
}
