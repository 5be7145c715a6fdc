package field

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Vec is a 2D point or displacement in surface units.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k.
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Particle is one simulated point. Radius, Opacity and Color are fixed at
// creation.
type Particle struct {
	Pos     Vec
	Vel     Vec
	Radius  float64
	Opacity float64
	Color   colorful.Color
}
