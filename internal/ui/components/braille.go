package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/theme"
)

// Dot bits of U+2800 braille cells, indexed by [row][col] inside the 2x4 cell.
var cellBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const blankCell = rune(0x2800)

// dot is one sub-cell pixel. ink is a palette index, or -1 for the dim
// track; level is the gradient position in [0,1] for RenderGradient.
type dot struct {
	on    bool
	ink   int
	level float64
}

// BrailleCanvas is a pixel grid twice as wide and four times as tall as its
// size in terminal cells.
type BrailleCanvas struct {
	Width, Height int // in cells
	dots          []dot
}

func NewBrailleCanvas(cols, rows int) *BrailleCanvas {
	cols, rows = max(cols, 0), max(rows, 0)
	return &BrailleCanvas{Width: cols, Height: rows, dots: make([]dot, cols*2*rows*4)}
}

func (c *BrailleCanvas) PixelWidth() int  { return c.Width * 2 }
func (c *BrailleCanvas) PixelHeight() int { return c.Height * 4 }

func (c *BrailleCanvas) at(x, y int) *dot {
	if x < 0 || y < 0 || x >= c.PixelWidth() || y >= c.PixelHeight() {
		return nil
	}
	return &c.dots[y*c.PixelWidth()+x]
}

// Set lights the pixel at x, y with palette index ink. Out of range pixels
// are ignored; ink -1 draws the dim track.
func (c *BrailleCanvas) Set(x, y, ink int) {
	if d := c.at(x, y); d != nil {
		*d = dot{on: true, ink: ink}
	}
}

// SetLevel lights a gradient pixel. Negative levels draw the dim track.
func (c *BrailleCanvas) SetLevel(x, y int, level float64) {
	if d := c.at(x, y); d != nil {
		ink := 0
		if level < 0 {
			ink = -1
		}
		*d = dot{on: true, ink: ink, level: level}
	}
}

// cell collects the glyph and the lit dots of the character at col, row.
func (c *BrailleCanvas) cell(col, row int) (rune, []dot) {
	glyph := blankCell
	var lit []dot
	for dy, bits := range cellBits {
		for dx, bit := range bits {
			if d := c.at(col*2+dx, row*4+dy); d != nil && d.on {
				glyph |= bit
				lit = append(lit, *d)
			}
		}
	}
	return glyph, lit
}

// paint renders every cell, asking color for the style of non-empty cells.
func (c *BrailleCanvas) paint(color func(lit []dot) lipgloss.Style) []string {
	lines := make([]string, c.Height)
	for row := range c.Height {
		var sb strings.Builder
		for col := range c.Width {
			glyph, lit := c.cell(col, row)
			if glyph == blankCell {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(color(lit).Render(string(glyph)))
		}
		lines[row] = sb.String()
	}
	return lines
}

// Render colors each cell with the palette entry most of its dots carry.
// Cells dominated by the dim track, or by an index past the palette, use dim.
func (c *BrailleCanvas) Render(palette []string, dim string) []string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(dim))
	styles := make([]lipgloss.Style, len(palette))
	for i, hex := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return c.paint(func(lit []dot) lipgloss.Style {
		votes := map[int]int{}
		best := lit[0].ink
		for _, d := range lit {
			votes[d.ink]++
			if votes[d.ink] > votes[best] {
				best = d.ink
			}
		}
		if best < 0 || best >= len(styles) {
			return dimStyle
		}
		return styles[best]
	})
}

// RenderGradient colors cells by the mean level of their gradient dots.
// Cells with more track than gradient dots use dim.
func (c *BrailleCanvas) RenderGradient(dim string, stops []string) []string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(dim))
	return c.paint(func(lit []dot) lipgloss.Style {
		var sum float64
		n := 0
		for _, d := range lit {
			if d.ink >= 0 {
				sum += d.level
				n++
			}
		}
		if n == 0 || n <= len(lit)-n {
			return dimStyle
		}
		hex := theme.MultiStopGradient(math.Min(sum/float64(n), 1), stops)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	})
}

// polar calls fn for every pixel whose center lies between inner and outer
// radius of cx, cy, passing its offset from the center.
func (c *BrailleCanvas) polar(cx, cy, outer, inner float64, fn func(x, y int, dx, dy float64)) {
	for y := range c.PixelHeight() {
		for x := range c.PixelWidth() {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if r := math.Hypot(dx, dy); r >= inner && r <= outer {
				fn(x, y, dx, dy)
			}
		}
	}
}

// DrawRing fills the ring sector between from and to, in radians measured
// clockwise from twelve o'clock.
func (c *BrailleCanvas) DrawRing(cx, cy, outer, inner, from, to float64, ink int) {
	c.polar(cx, cy, outer, inner, func(x, y int, dx, dy float64) {
		a := math.Atan2(dx, -dy)
		if a < 0 {
			a += 2 * math.Pi
		}
		if a >= from && a <= to {
			c.Set(x, y, ink)
		}
	})
}

// DrawArc draws the upper half ring centered on cx, cy and fills it from
// the left up to frac (0..1). Filled pixels carry their position along the
// arc as gradient level; the rest is dim track.
func (c *BrailleCanvas) DrawArc(cx, cy, outer, inner, frac float64) {
	frac = math.Min(math.Max(frac, 0), 1)
	c.polar(cx, cy, outer, inner, func(x, y int, dx, dy float64) {
		if dy > 1 {
			return
		}
		pos := (math.Atan2(dy, dx) + math.Pi) / math.Pi
		if pos <= frac {
			c.SetLevel(x, y, pos)
		} else {
			c.SetLevel(x, y, -1)
		}
	})
}

// DrawLine plots a straight segment between two pixels.
func (c *BrailleCanvas) DrawLine(x0, y0, x1, y1, ink int) {
	steps := max(absInt(x1-x0), absInt(y1-y0))
	if steps == 0 {
		c.Set(x0, y0, ink)
		return
	}
	for i := range steps + 1 {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		c.Set(x, y, ink)
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
