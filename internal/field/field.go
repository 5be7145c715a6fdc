package field

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"netfield.klederson.com/internal/config"
)

// Rand is the random source used to seed particles. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Palette is the fixed set of particle colors.
var Palette = parsePalette(config.Palette)

var linkColor = mustHex(config.LinkColorHex)

// mustHex parses a constant hex color and panics if it is malformed.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parsePalette(hexes []string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		out[i] = mustHex(h)
	}
	return out
}

// Field owns the particles plus the mutable surface extent and pointer.
// It is not safe for concurrent use; resize and pointer events must be
// applied between ticks.
type Field struct {
	particles []Particle
	width     float64
	height    float64
	pointer   Vec
}

// Count returns the particle count for a surface of the given width:
// min(MaxParticles, floor(width/ParticleSpacing)), never negative.
func Count(width float64) int {
	if !(width > 0) {
		return 0
	}
	n := int(math.Floor(width / config.ParticleSpacing))
	if n > config.MaxParticles {
		n = config.MaxParticles
	}
	if n < 0 {
		n = 0
	}
	return n
}

// New creates a field sized width x height with Count(width) particles
// scattered uniformly over the surface. The pointer starts at the origin.
func New(width, height float64, rng Rand) *Field {
	n := Count(width)
	f := &Field{
		particles: make([]Particle, n),
		width:     width,
		height:    height,
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			Pos: Vec{rng.Float64() * width, rng.Float64() * height},
			Vel: Vec{
				(rng.Float64() - 0.5) * config.VelocitySpread,
				(rng.Float64() - 0.5) * config.VelocitySpread,
			},
			Radius:  rng.Float64()*config.RadiusSpread + config.RadiusMin,
			Opacity: rng.Float64()*config.OpacitySpread + config.OpacityMin,
			Color:   Palette[rng.Intn(len(Palette))],
		}
	}
	return f
}

// FromParticles builds a field around an existing particle set.
func FromParticles(width, height float64, particles []Particle) *Field {
	ps := make([]Particle, len(particles))
	copy(ps, particles)
	return &Field{particles: ps, width: width, height: height}
}

// Len returns the particle count. It never changes after creation.
func (f *Field) Len() int { return len(f.particles) }

// Particles exposes the particle slice. Callers must not append to it.
func (f *Field) Particles() []Particle { return f.particles }

// Extent returns the current surface size.
func (f *Field) Extent() (width, height float64) { return f.width, f.height }

// Pointer returns the last pointer position.
func (f *Field) Pointer() Vec { return f.pointer }

// Resize updates the surface extent. Particles are left where they are; any
// now outside the surface bounce back on their own.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// PointerMove records the pointer position.
func (f *Field) PointerMove(x, y float64) {
	f.pointer = Vec{x, y}
}

// Step advances every particle by one frame: Euler integration, edge
// bounce, then the pull toward the pointer.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos = p.Pos.Add(p.Vel)

		// Reflect velocity only; position is not clamped back inside.
		if p.Pos.X < 0 || p.Pos.X > f.width {
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y < 0 || p.Pos.Y > f.height {
			p.Vel.Y = -p.Vel.Y
		}

		d := f.pointer.Sub(p.Pos)
		if d.Len() < config.PointerRadius {
			p.Pos = p.Pos.Add(d.Scale(config.PointerPull))
		}
	}
}

// Link is a connection between particles A and B (A < B).
type Link struct {
	A, B  int
	Alpha float64
}

// LinkAlpha returns the stroke alpha for two particles d apart, and whether
// they are close enough to be connected at all.
func LinkAlpha(d float64) (float64, bool) {
	if d >= config.LinkDistance {
		return 0, false
	}
	return (config.LinkDistance - d) / config.LinkDistance * config.LinkAlphaMax, true
}

// Links appends every connected pair to dst and returns it.
func (f *Field) Links(dst []Link) []Link {
	ps := f.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if a, ok := LinkAlpha(ps[i].Pos.Dist(ps[j].Pos)); ok {
				dst = append(dst, Link{A: i, B: j, Alpha: a})
			}
		}
	}
	return dst
}
