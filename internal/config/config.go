package config

import "time"

const (
	// Particle field
	MaxParticles    = 80    // Upper bound on particle count
	ParticleSpacing = 15.0  // One particle per this many surface units of width
	LinkDistance    = 120.0 // Pairs closer than this get a connection line
	LinkAlphaMax    = 0.3   // Connection alpha at zero distance
	LinkWidth       = 0.5   // Connection stroke width
	PointerRadius   = 100.0 // Pointer influence radius
	PointerPull     = 0.001 // Fraction of the pointer offset applied per tick
	GlowBlur        = 10.0  // Particle glow radius in surface units
	VelocitySpread  = 0.5   // Velocity components fall in [-spread/2, spread/2]
	RadiusMin       = 1.0
	RadiusSpread    = 2.0
	OpacityMin      = 0.2
	OpacitySpread   = 0.5
	LinkColorHex    = "#ff6b6b"

	// Terminal geometry: each cell stands for CellWidthPx x CellHeightPx
	// surface units. Braille cells hold 2x4 dots.
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
	DotsPerCellX = 2
	DotsPerCellY = 4

	// Floating shapes
	ShapeRepelRadius   = 150.0
	ShapeRepelStrength = 80.0 // Max push in surface units
	ShapeScaleGain     = 0.3
	ShapeRestOpacity   = 0.6
	ShapeSpringFreq    = 6.0
	ShapeSpringDamping = 0.7

	// Typewriter
	TypeStartDelay    = 1000 * time.Millisecond
	TypeTitleSpeed    = 120 * time.Millisecond
	TypeSubtitleSpeed = 60 * time.Millisecond
	CursorBlinkPeriod = time.Second
	DefaultTitle      = "netfield"
	DefaultSubtitle   = "particles, links and a pointer"

	// Frame loop
	DefaultFPS       = 60
	MinFPS           = 1
	MaxFPS           = 120
	FrameHistorySize = 60 // Frame times kept for the FPS readout

	// Demo mode
	DemoPointerInterval = 50 * time.Millisecond

	// App
	AppName      = "NETFIELD"
	AppVersion   = "1.0"
	AppDir       = "netfield"
	SettingsFile = "settings.toml"
)

// Palette holds the particle colors.
var Palette = []string{"#ff6b6b", "#4ecdc4", "#ffe066"}
