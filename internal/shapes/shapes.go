package shapes

import (
	"math"

	"github.com/charmbracelet/harmonica"
	colorful "github.com/lucasb-eyer/go-colorful"
	"netfield.klederson.com/internal/config"
	"netfield.klederson.com/internal/field"
)

// Canvas is where shapes are drawn.
type Canvas interface {
	Glyph(at field.Vec, r rune, c colorful.Color, alpha float64)
}

// Shape is a floating glyph anchored at a fraction of the surface.
type Shape struct {
	Small, Large rune
	Anchor       field.Vec // fraction of the surface extent, 0..1 per axis

	Offset  field.Vec // displayed displacement
	Target  field.Vec // displacement the spring is easing toward
	Scale   float64
	Opacity float64

	vel field.Vec
}

var defaultShapes = []Shape{
	{Small: '◇', Large: '◆', Anchor: field.Vec{X: 0.12, Y: 0.22}},
	{Small: '○', Large: '●', Anchor: field.Vec{X: 0.84, Y: 0.18}},
	{Small: '△', Large: '▲', Anchor: field.Vec{X: 0.22, Y: 0.8}},
	{Small: '□', Large: '■', Anchor: field.Vec{X: 0.76, Y: 0.72}},
	{Small: '◇', Large: '◆', Anchor: field.Vec{X: 0.5, Y: 0.42}},
}

// Set is the collection of floating shapes. Unlike the particle field, the
// pointer pushes shapes away.
type Set struct {
	shapes []Shape
	spring harmonica.Spring
	width  float64
	height float64
}

// New creates the default shapes, easing at the given frame rate.
func New(fps int, width, height float64) *Set {
	if fps < 1 {
		fps = config.DefaultFPS
	}
	s := &Set{
		shapes: make([]Shape, len(defaultShapes)),
		spring: harmonica.NewSpring(harmonica.FPS(fps), config.ShapeSpringFreq, config.ShapeSpringDamping),
		width:  width,
		height: height,
	}
	copy(s.shapes, defaultShapes)
	s.Reset()
	return s
}

// Resize updates the surface extent used to place anchors.
func (s *Set) Resize(width, height float64) {
	s.width, s.height = width, height
}

// Home returns the undisplaced center of shape i.
func (s *Set) Home(i int) field.Vec {
	a := s.shapes[i].Anchor
	return field.Vec{X: a.X * s.width, Y: a.Y * s.height}
}

// Center returns where shape i is currently drawn.
func (s *Set) Center(i int) field.Vec {
	return s.Home(i).Add(s.shapes[i].Offset)
}

// PointerMove retargets every shape. Shapes whose displayed center lies
// within ShapeRepelRadius of p are pushed directly away, harder when closer.
func (s *Set) PointerMove(p field.Vec) {
	for i := range s.shapes {
		sh := &s.shapes[i]
		delta := p.Sub(s.Center(i))
		d := delta.Len()
		if d < config.ShapeRepelRadius && d > 0 {
			force := (config.ShapeRepelRadius - d) / config.ShapeRepelRadius
			sh.Target = delta.Scale(-force * config.ShapeRepelStrength / d)
			sh.Scale = 1 + force*config.ShapeScaleGain
			sh.Opacity = math.Min(1, config.ShapeRestOpacity+force*(1-config.ShapeRestOpacity))
			continue
		}
		sh.rest()
	}
}

// Reset sends every shape back to rest, as when the pointer leaves.
func (s *Set) Reset() {
	for i := range s.shapes {
		s.shapes[i].rest()
	}
}

func (sh *Shape) rest() {
	sh.Target = field.Vec{}
	sh.Scale = 1
	sh.Opacity = config.ShapeRestOpacity
}

// Step eases each displayed offset one frame toward its target.
func (s *Set) Step() {
	for i := range s.shapes {
		sh := &s.shapes[i]
		sh.Offset.X, sh.vel.X = s.spring.Update(sh.Offset.X, sh.vel.X, sh.Target.X)
		sh.Offset.Y, sh.vel.Y = s.spring.Update(sh.Offset.Y, sh.vel.Y, sh.Target.Y)
	}
}

// Draw renders each shape as a glyph; enlarged shapes use their large form.
func (s *Set) Draw(c Canvas, col colorful.Color) {
	for i, sh := range s.shapes {
		r := sh.Small
		if sh.Scale >= 1+config.ShapeScaleGain/2 {
			r = sh.Large
		}
		c.Glyph(s.Center(i), r, col, sh.Opacity)
	}
}
