package ui

import (
	"github.com/charmbracelet/lipgloss"
	"netfield.klederson.com/internal/theme"
)

// Styles are the bar styles for one theme.
type Styles struct {
	Theme theme.Theme

	MenuBar     lipgloss.Style
	MenuTitle   lipgloss.Style
	MenuLabel   lipgloss.Style
	Subtitle    lipgloss.Style
	Cursor      lipgloss.Style
	StatusBar   lipgloss.Style
	StatusLabel lipgloss.Style
	StatusValue lipgloss.Style
	Running     lipgloss.Style
	Paused      lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles builds the styles for th.
func NewStyles(th theme.Theme) Styles {
	return Styles{
		Theme: th,

		MenuBar: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Text).
			Padding(0, 1),

		MenuTitle: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Accent).
			Bold(true),

		MenuLabel: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Text),

		Subtitle: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Muted),

		Cursor: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Cursor),

		StatusBar: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Muted).
			Padding(0, 1),

		StatusLabel: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Muted),

		StatusValue: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Text),

		Running: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Accent).
			Bold(true),

		Paused: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Muted).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Accent),

		HelpDesc: lipgloss.NewStyle().
			Background(th.Bar).
			Foreground(th.Muted),
	}
}
