package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"netfield.klederson.com/internal/config"
)

// Heading is the typed title text as of this frame.
type Heading struct {
	Title      string
	Subtitle   string
	CursorLine int // 0 title, 1 subtitle, -1 none
	CursorOn   bool
}

// RenderMenuBar renders the top bar: app name, the typed heading and the
// loop state.
func RenderMenuBar(st Styles, width int, h Heading, running bool) string {
	name := st.MenuTitle.Render(fmt.Sprintf("%s v%s", config.AppName, config.AppVersion))

	cursor := st.Cursor.Render(" ")
	if h.CursorOn {
		cursor = st.Cursor.Render("▌")
	}

	heading := st.MenuLabel.Render("  " + h.Title)
	if h.CursorLine == 0 {
		heading += cursor
	}
	if h.Subtitle != "" || h.CursorLine == 1 {
		heading += st.Subtitle.Render("  " + h.Subtitle)
		if h.CursorLine == 1 {
			heading += cursor
		}
	}

	status := st.Paused.Render("PAUSED")
	if running {
		status = st.Running.Render("RUNNING")
	}

	left := name + heading
	right := status + " "

	// Padding(0, 1) on the bar eats two columns.
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := st.MenuLabel.Render(strings.Repeat(" ", gap))

	return st.MenuBar.Width(width).MaxHeight(1).Render(left + padding + right)
}
