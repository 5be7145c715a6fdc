package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stats is the status bar readout.
type Stats struct {
	Particles int
	Links     int
	FPS       float64
	PointerX  float64
	PointerY  float64
	Theme     string
}

// RenderStatusBar renders the bottom bar. When help is non-empty it replaces
// the readout.
func RenderStatusBar(st Styles, width int, s Stats, help string) string {
	content := help
	if content == "" {
		content = st.StatusLabel.Render("Particles: ") + st.StatusValue.Render(fmt.Sprintf("%d", s.Particles)) +
			st.StatusLabel.Render("  Links: ") + st.StatusValue.Render(fmt.Sprintf("%d", s.Links)) +
			st.StatusLabel.Render("  FPS: ") + st.StatusValue.Render(fmt.Sprintf("%.0f", s.FPS)) +
			st.StatusLabel.Render("  Pointer: ") + st.StatusValue.Render(fmt.Sprintf("%.0f,%.0f", s.PointerX, s.PointerY)) +
			st.StatusLabel.Render("  Theme: ") + st.StatusValue.Render(s.Theme) +
			st.StatusLabel.Render("  ? help")
	}

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := st.StatusLabel.Render(strings.Repeat(" ", gap))

	return st.StatusBar.Width(width).MaxHeight(1).Render(content + padding)
}
