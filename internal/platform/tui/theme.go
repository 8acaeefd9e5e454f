package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles shared by the menu, the preset picker,
// the run history and the walk status line.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Walk view styles
	StatusMessage lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style

	// Run history styles
	TableBorder  lipgloss.Style
	TableHeader  lipgloss.Style
	TableActive  lipgloss.Style
	EmptyMessage lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),  // Bright cyan
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),            // Light gray
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),            // Medium gray

		StatusMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // Red
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		TableBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		EmptyMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),
	}
}

var theme = DefaultTheme()
