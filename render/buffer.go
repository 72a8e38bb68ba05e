package render

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/vmath"
)

// PixelsPerCell is the vertical pixel count of one terminal cell
// Each cell shows two square pixels as an upper half block
const PixelsPerCell = 2

// Half block glyphs
const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

type pixel struct {
	color core.RGB
	lit   bool
}

type cell struct {
	r      rune
	fg, bg core.RGB
	set    bool
}

// RenderBuffer is a two-layer compositor: a pixel canvas of width × 2·height
// square pixels under a text layer of width × height cells
// Text cells hide the pixels beneath them
type RenderBuffer struct {
	pixels []pixel
	cells  []cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer for a screen of width × height cells
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]cell, size)
		b.pixels = make([]pixel, size*PixelsPerCell)
	} else {
		b.cells = b.cells[:size]
		b.pixels = b.pixels[:size*PixelsPerCell]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets both layers using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	b.pixels[0] = pixel{}
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
}

// Width and Height return the size in cells
func (b *RenderBuffer) Width() int  { return b.width }
func (b *RenderBuffer) Height() int { return b.height }

// PixelHeight returns the canvas height in pixels
func (b *RenderBuffer) PixelHeight() int { return b.height * PixelsPerCell }

func (b *RenderBuffer) pixelInBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height*PixelsPerCell
}

func (b *RenderBuffer) cellInBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== PIXEL LAYER =====

// Plot composites one pixel; out of bounds writes are dropped
func (b *RenderBuffer) Plot(x, y int, c core.RGB, mode BlendMode, alpha float64) {
	if !b.pixelInBounds(x, y) {
		return
	}
	dst := &b.pixels[y*b.width+x]
	if !dst.lit {
		dst.color = core.RGBBlack
	}
	dst.color = composite(dst.color, c, mode, alpha)
	dst.lit = true
}

// PlotPoint plots the pixel containing screen point p
func (b *RenderBuffer) PlotPoint(p vmath.Vec, c core.RGB, mode BlendMode, alpha float64) {
	if !vmath.IsFinite(p) {
		return
	}
	b.Plot(int(math.Floor(p.X)), int(math.Floor(p.Y)), c, mode, alpha)
}

// Line draws a Bresenham line between screen points
// The segment is clipped to the canvas first so far off-screen endpoints cost nothing
func (b *RenderBuffer) Line(from, to vmath.Vec, c core.RGB, mode BlendMode, alpha float64) {
	if !vmath.IsFinite(from) || !vmath.IsFinite(to) {
		return
	}
	from, to, ok := b.clip(from, to)
	if !ok {
		return
	}

	x0, y0 := int(math.Floor(from.X)), int(math.Floor(from.Y))
	x1, y1 := int(math.Floor(to.X)), int(math.Floor(to.Y))
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.Plot(x0, y0, c, mode, alpha)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clip trims a segment to the canvas rectangle (Liang-Barsky)
func (b *RenderBuffer) clip(from, to vmath.Vec) (vmath.Vec, vmath.Vec, bool) {
	xmin, ymin := 0.0, 0.0
	xmax, ymax := float64(b.width)-1e-9, float64(b.PixelHeight())-1e-9
	d := vmath.Sub(to, from)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, from.X - xmin},
		{d.X, xmax - from.X},
		{-d.Y, from.Y - ymin},
		{d.Y, ymax - from.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return from, to, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return from, to, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return from, to, false
			}
			t1 = min(t1, t)
		}
	}
	return vmath.Add(from, vmath.Scale(d, t0)), vmath.Add(from, vmath.Scale(d, t1)), true
}

// Polyline connects consecutive points
func (b *RenderBuffer) Polyline(points []vmath.Vec, c core.RGB, mode BlendMode, alpha float64) {
	for i := 1; i < len(points); i++ {
		b.Line(points[i-1], points[i], c, mode, alpha)
	}
}

// Disc fills every pixel whose center lies within r of center
// Discs smaller than a pixel still light the pixel under center
func (b *RenderBuffer) Disc(center vmath.Vec, r float64, c core.RGB, mode BlendMode, alpha float64) {
	if !vmath.IsFinite(center) {
		return
	}
	b.PlotPoint(center, c, mode, alpha)
	if r < 0.5 {
		return
	}
	x0, x1 := int(math.Floor(center.X-r)), int(math.Ceil(center.X+r))
	y0, y1 := int(math.Floor(center.Y-r)), int(math.Ceil(center.Y+r))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width-1), min(y1, b.PixelHeight()-1)
	r2 := r * r
	cx, cy := int(math.Floor(center.X)), int(math.Floor(center.Y))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x == cx && y == cy {
				continue
			}
			px, py := float64(x)+0.5-center.X, float64(y)+0.5-center.Y
			if px*px+py*py <= r2 {
				b.Plot(x, y, c, mode, alpha)
			}
		}
	}
}

// Ring outlines a circle of radius r
func (b *RenderBuffer) Ring(center vmath.Vec, r float64, c core.RGB, mode BlendMode, alpha float64) {
	if !vmath.IsFinite(center) || r < 1 {
		return
	}
	steps := max(8, int(2*math.Pi*r))
	prev := vmath.Add(center, vmath.V(r, 0))
	for i := 1; i <= steps; i++ {
		next := vmath.Add(center, vmath.FromPolar(r, 2*math.Pi*float64(i)/float64(steps)))
		b.Line(prev, next, c, mode, alpha)
		prev = next
	}
}

// Pixel returns the composited pixel color and whether anything was drawn there
func (b *RenderBuffer) Pixel(x, y int) (core.RGB, bool) {
	if !b.pixelInBounds(x, y) {
		return core.RGB{}, false
	}
	p := b.pixels[y*b.width+x]
	return p.color, p.lit
}

// ===== TEXT LAYER =====

// SetCell writes one text cell
func (b *RenderBuffer) SetCell(x, y int, r rune, fg, bg core.RGB) {
	if !b.cellInBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = cell{r: r, fg: fg, bg: bg, set: true}
}

// Text writes s starting at (x, y), clipped at the right edge
// Returns the column after the last rune
func (b *RenderBuffer) Text(x, y int, s string, fg, bg core.RGB) int {
	for _, r := range s {
		if r == utf8.RuneError {
			r = '?'
		}
		b.SetCell(x, y, r, fg, bg)
		x++
	}
	return x
}

// Fill paints a row segment of blank text cells
func (b *RenderBuffer) Fill(x, y, n int, bg core.RGB) {
	for i := 0; i < n; i++ {
		b.SetCell(x+i, y, ' ', bg, bg)
	}
}

// Cell returns the text cell at (x, y) and whether it was written
func (b *RenderBuffer) Cell(x, y int) (rune, bool) {
	if !b.cellInBounds(x, y) {
		return 0, false
	}
	c := b.cells[y*b.width+x]
	return c.r, c.set
}

// ===== OUTPUT =====

func rgbStyle(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// FlushTo writes every cell to screen; pixel pairs become half blocks over the background colour
func (b *RenderBuffer) FlushTo(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if c := b.cells[y*b.width+x]; c.set {
				screen.SetContent(x, y, c.r, nil, rgbStyle(c.fg, c.bg))
				continue
			}
			top := b.pixels[(y*PixelsPerCell)*b.width+x]
			bottom := b.pixels[(y*PixelsPerCell+1)*b.width+x]
			switch {
			case top.lit:
				bg := RgbBackground
				if bottom.lit {
					bg = bottom.color
				}
				screen.SetContent(x, y, upperHalf, nil, rgbStyle(top.color, bg))
			case bottom.lit:
				screen.SetContent(x, y, lowerHalf, nil, rgbStyle(bottom.color, RgbBackground))
			default:
				screen.SetContent(x, y, ' ', nil, rgbStyle(RgbBackground, RgbBackground))
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
