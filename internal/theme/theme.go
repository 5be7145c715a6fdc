package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Name identifies a theme.
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"
)

// Theme is the color set for one mode.
type Theme struct {
	Name       Name
	Background colorful.Color
	Bar        lipgloss.Color // menu and status bar background
	Text       lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Cursor     lipgloss.Color
	Shape      colorful.Color
}

var themes = map[Name]Theme{
	Dark: {
		Name:       Dark,
		Background: mustHex("#0b0d17"),
		Bar:        lipgloss.Color("#151826"),
		Text:       lipgloss.Color("#e6e6f0"),
		Accent:     lipgloss.Color("#ff6b6b"),
		Muted:      lipgloss.Color("#6b6f85"),
		Cursor:     lipgloss.Color("#6366f1"),
		Shape:      mustHex("#6366f1"),
	},
	Light: {
		Name:       Light,
		Background: mustHex("#f5f3ee"),
		Bar:        lipgloss.Color("#e4e0d6"),
		Text:       lipgloss.Color("#1d1f2b"),
		Accent:     lipgloss.Color("#d94848"),
		Muted:      lipgloss.Color("#8a8778"),
		Cursor:     lipgloss.Color("#6366f1"),
		Shape:      mustHex("#4f46e5"),
	},
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse maps a stored value to a theme name. Anything unknown is Dark.
func Parse(s string) Name {
	if Name(s) == Light {
		return Light
	}
	return Dark
}

// Get returns the theme for n, falling back to Dark.
func Get(n Name) Theme {
	return themes[Parse(string(n))]
}

// Toggle returns the opposite theme: Light becomes Dark, anything else Light.
func Toggle(n Name) Name {
	if n == Light {
		return Dark
	}
	return Light
}
