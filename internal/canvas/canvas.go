package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"netfield.klederson.com/internal/config"
	"netfield.klederson.com/internal/field"
)

const (
	dotUnitX = config.CellWidthPx / config.DotsPerCellX
	dotUnitY = config.CellHeightPx / config.DotsPerCellY

	minInk   = 0.25 // Lowest blend toward a dot's color so faint strokes stay visible
	glowGain = 0.35 // Peak background tint from a particle glow
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type dot struct {
	c colorful.Color
	a float64
}

type glyph struct {
	r rune
	c colorful.Color
	a float64
}

// Canvas is a braille raster covering a grid of terminal cells. Each cell
// holds 2x4 dots and stands for CellWidthPx x CellHeightPx surface units.
// It implements field.Surface.
type Canvas struct {
	cols, rows int
	dots       []dot // (cols*2) x (rows*4)
	tint       []dot // per cell background glow
	glyphs     map[int]glyph
	alpha      float64
	bg         colorful.Color
}

// New creates a canvas of cols x rows cells on the given background.
func New(cols, rows int, bg colorful.Color) *Canvas {
	c := &Canvas{bg: bg, alpha: 1}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the raster. Contents are cleared.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.dots = make([]dot, cols*config.DotsPerCellX*rows*config.DotsPerCellY)
	c.tint = make([]dot, cols*rows)
	c.glyphs = make(map[int]glyph)
}

// SetBackground changes the color everything is composited over.
func (c *Canvas) SetBackground(bg colorful.Color) { c.bg = bg }

// Extent returns the canvas size in surface units.
func (c *Canvas) Extent() (width, height float64) {
	return float64(c.cols) * config.CellWidthPx, float64(c.rows) * config.CellHeightPx
}

// CellCenter maps a cell to the surface coordinate of its center.
func CellCenter(col, row int) field.Vec {
	return field.Vec{
		X: (float64(col) + 0.5) * config.CellWidthPx,
		Y: (float64(row) + 0.5) * config.CellHeightPx,
	}
}

func (c *Canvas) dotW() int { return c.cols * config.DotsPerCellX }
func (c *Canvas) dotH() int { return c.rows * config.DotsPerCellY }

// Clear erases dots, glow and glyphs.
func (c *Canvas) Clear() {
	for i := range c.dots {
		c.dots[i] = dot{}
	}
	for i := range c.tint {
		c.tint[i] = dot{}
	}
	clear(c.glyphs)
}

// SetGlobalAlpha sets the alpha multiplied into subsequent draws.
func (c *Canvas) SetGlobalAlpha(a float64) { c.alpha = clamp01(a) }

// StrokeLine draws a line one dot wide. Width below a dot has no visible
// effect on a braille raster.
func (c *Canvas) StrokeLine(from, to field.Vec, col colorful.Color, alpha, width float64) {
	a := clamp01(alpha * c.alpha)
	if a == 0 {
		return
	}
	x0, y0 := from.X/dotUnitX, from.Y/dotUnitY
	x1, y1 := to.X/dotUnitX, to.Y/dotUnitY
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		c.plot(int(math.Floor(x0)), int(math.Floor(y0)), col, a)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(int(math.Floor(x0+(x1-x0)*t)), int(math.Floor(y0+(y1-y0)*t)), col, a)
	}
}

// FillCircle fills every dot whose center lies within radius, always
// including the dot under center, and tints the cells within blur.
func (c *Canvas) FillCircle(center field.Vec, radius float64, col colorful.Color, blur float64, glow colorful.Color) {
	a := c.alpha
	if a == 0 {
		return
	}
	cx, cy := int(math.Floor(center.X/dotUnitX)), int(math.Floor(center.Y/dotUnitY))
	c.plot(cx, cy, col, a)

	rx, ry := int(math.Ceil(radius/dotUnitX)), int(math.Ceil(radius/dotUnitY))
	for dy := cy - ry; dy <= cy+ry; dy++ {
		for dx := cx - rx; dx <= cx+rx; dx++ {
			if dx == cx && dy == cy {
				continue
			}
			p := field.Vec{X: (float64(dx) + 0.5) * dotUnitX, Y: (float64(dy) + 0.5) * dotUnitY}
			if p.Dist(center) <= radius {
				c.plot(dx, dy, col, a)
			}
		}
	}

	if blur > 0 {
		c.glowAt(center, blur, glow, a)
	}
}

// Glyph overlays a single rune on the cell containing at. A later glyph
// on the same cell replaces an earlier one.
func (c *Canvas) Glyph(at field.Vec, r rune, col colorful.Color, alpha float64) {
	cx, cy := int(math.Floor(at.X/config.CellWidthPx)), int(math.Floor(at.Y/config.CellHeightPx))
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return
	}
	c.glyphs[cy*c.cols+cx] = glyph{r: r, c: col, a: clamp01(alpha)}
}

func (c *Canvas) plot(x, y int, col colorful.Color, a float64) {
	if x < 0 || y < 0 || x >= c.dotW() || y >= c.dotH() {
		return
	}
	over(&c.dots[y*c.dotW()+x], col, a)
}

func (c *Canvas) glowAt(center field.Vec, blur float64, col colorful.Color, a float64) {
	homeCol := int(math.Floor(center.X / config.CellWidthPx))
	homeRow := int(math.Floor(center.Y / config.CellHeightPx))
	minCol := int(math.Floor((center.X - blur) / config.CellWidthPx))
	maxCol := int(math.Floor((center.X + blur) / config.CellWidthPx))
	minRow := int(math.Floor((center.Y - blur) / config.CellHeightPx))
	maxRow := int(math.Floor((center.Y + blur) / config.CellHeightPx))
	for row := max(minRow, 0); row <= min(maxRow, c.rows-1); row++ {
		for cl := max(minCol, 0); cl <= min(maxCol, c.cols-1); cl++ {
			d := CellCenter(cl, row).Dist(center)
			home := cl == homeCol && row == homeRow
			if d >= blur && !home {
				continue
			}
			strength := glowGain * a * math.Max(1-d/blur, 0.2)
			over(&c.tint[row*c.cols+cl], col, strength)
		}
	}
}

// over composites col at alpha a onto d (source-over).
func over(d *dot, col colorful.Color, a float64) {
	if a <= 0 {
		return
	}
	if d.a == 0 {
		d.c, d.a = col, a
		return
	}
	out := a + d.a*(1-a)
	d.c = d.c.BlendRgb(col, a/out)
	d.a = out
}

// View renders the raster as styled rows. Runs of cells sharing colors are
// rendered with one style.
func (c *Canvas) View() string {
	if c.cols == 0 || c.rows == 0 {
		return ""
	}
	rows := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var line strings.Builder
		var run strings.Builder
		var runFg, runBg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(runFg)).
				Background(lipgloss.Color(runBg)).
				Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			ch, fg, bg := c.cell(col, row)
			fgHex, bgHex := fg.Hex(), bg.Hex()
			if fgHex != runFg || bgHex != runBg {
				flush()
				runFg, runBg = fgHex, bgHex
			}
			run.WriteRune(ch)
		}
		flush()
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

// cell resolves the character and colors for one terminal cell.
func (c *Canvas) cell(col, row int) (rune, colorful.Color, colorful.Color) {
	bg := c.bg
	if t := c.tint[row*c.cols+col]; t.a > 0 {
		bg = c.bg.BlendRgb(t.c, clamp01(t.a))
	}

	if g, ok := c.glyphs[row*c.cols+col]; ok {
		return g.r, bg.BlendRgb(g.c, g.a), bg
	}

	var pattern uint
	var r, gr, b, wsum, peak float64
	for dx := 0; dx < config.DotsPerCellX; dx++ {
		for dy := 0; dy < config.DotsPerCellY; dy++ {
			d := c.dots[(row*config.DotsPerCellY+dy)*c.dotW()+col*config.DotsPerCellX+dx]
			if d.a <= 0 {
				continue
			}
			pattern |= 1 << brailleBits[dx][dy]
			r += d.c.R * d.a
			gr += d.c.G * d.a
			b += d.c.B * d.a
			wsum += d.a
			peak = math.Max(peak, d.a)
		}
	}
	if pattern == 0 {
		return ' ', bg, bg
	}
	ink := colorful.Color{R: r / wsum, G: gr / wsum, B: b / wsum}
	return rune(0x2800 + pattern), bg.BlendRgb(ink, minInk+peak*(1-minInk)), bg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
