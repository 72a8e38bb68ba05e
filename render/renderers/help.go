package renderers

import (
	"github.com/lixenwraith/gravsim/render"
)

// HelpRenderer draws the key binding overlay, hidden until toggled
type HelpRenderer struct {
	lines   []string
	visible bool
}

// NewHelpRenderer creates a hidden overlay listing lines
func NewHelpRenderer(lines []string) *HelpRenderer {
	return &HelpRenderer{lines: lines}
}

// Toggle flips overlay visibility
func (r *HelpRenderer) Toggle() { r.visible = !r.visible }

// IsVisible implements VisibilityToggle
func (r *HelpRenderer) IsVisible() bool { return r.visible }

// Render implements SystemRenderer
func (r *HelpRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	width := 0
	for _, l := range r.lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	x := max((ctx.Width-width)/2, 0)
	y := max((ctx.Height-len(r.lines)-2)/2, 1)

	buf.Fill(x, y, width, render.RgbStatusBg)
	for i, l := range r.lines {
		buf.Fill(x, y+1+i, width, render.RgbStatusBg)
		buf.Text(x+2, y+1+i, l, render.RgbStatusFg, render.RgbStatusBg)
	}
	buf.Fill(x, y+1+len(r.lines), width, render.RgbStatusBg)
}
