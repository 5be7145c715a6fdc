package field

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"netfield.klederson.com/internal/config"
)

// Surface is a 2D raster the field draws onto.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// SetGlobalAlpha sets the alpha multiplied into subsequent fills.
	SetGlobalAlpha(a float64)
	StrokeLine(from, to Vec, c colorful.Color, alpha, width float64)
	// FillCircle draws a filled disc with a glow of the given blur radius
	// in glow color.
	FillCircle(center Vec, radius float64, c colorful.Color, blur float64, glow colorful.Color)
}

// Render draws one frame: clear, connections, then particles. The links
// buffer is reused across frames and returned.
func (f *Field) Render(s Surface, links []Link) []Link {
	s.Clear()

	links = f.Links(links[:0])
	for _, l := range links {
		a, b := f.particles[l.A], f.particles[l.B]
		s.StrokeLine(a.Pos, b.Pos, linkColor, l.Alpha, config.LinkWidth)
	}

	for _, p := range f.particles {
		s.SetGlobalAlpha(p.Opacity)
		s.FillCircle(p.Pos, p.Radius, p.Color, config.GlowBlur, p.Color)
	}
	s.SetGlobalAlpha(1)

	return links
}
