package ui

import "github.com/charmbracelet/lipgloss"

// BarRows is the number of rows taken by the menu and status bars.
const BarRows = 2

// ComposeLayout stacks the menu bar, the particle canvas and the status bar.
func ComposeLayout(menuBar, body, statusBar string) string {
	if body == "" {
		return lipgloss.JoinVertical(lipgloss.Left, menuBar, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, body, statusBar)
}
