package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/render"
)

// StatusBarRenderer draws the settings line at the top and the message line at the bottom
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer { return &StatusBarRenderer{} }

type segment struct {
	text  string
	color core.RGB
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Height < 1 {
		return
	}
	r.renderTop(ctx, buf)
	if ctx.Height > 1 {
		r.renderBottom(ctx, buf)
	}
}

func (r *StatusBarRenderer) renderTop(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	cfg := snap.Config
	buf.Fill(0, 0, ctx.Width, render.RgbStatusBg)

	state := segment{"RUN", render.RgbStatusFg}
	if cfg.Paused {
		state = segment{"PAUSED", render.RgbStatusAccent}
	}
	gravity := fmt.Sprintf("G %.3g", cfg.G)
	if cfg.InvertGravity {
		gravity += " inv"
	}
	bounds := cfg.Bounds.String()
	if cfg.ZoomBounds {
		bounds += "+zoom"
	}
	sound := "snd"
	if ctx.HUD.Muted {
		sound = "mute"
	}

	segs := []segment{
		state,
		{fmt.Sprintf("t %.1f", snap.Time), render.RgbStatusFg},
		{fmt.Sprintf("n %d", len(snap.Bodies)), render.RgbStatusFg},
		{gravity, render.RgbStatusFg},
		{cfg.Collision.String(), render.RgbStatusFg},
		{bounds, render.RgbStatusFg},
		{cfg.ForceMethod.String(), render.RgbStatusFg},
		{fmt.Sprintf("x%.2f", snap.Camera.Zoom), render.RgbStatusFg},
		{fmt.Sprintf("E %.4g", snap.Energy.Total()), render.RgbStatusFg},
		{fmt.Sprintf("%.2fms", ctx.HUD.TickMillis), render.RgbStatusFg},
		{sound, render.RgbStatusFg},
	}
	if ctx.HUD.Peers > 0 {
		segs = append(segs, segment{fmt.Sprintf("peers %d", ctx.HUD.Peers), render.RgbStatusFg})
	}

	x := 1
	for i, s := range segs {
		if i > 0 {
			x = buf.Text(x, 0, " | ", render.RgbExtent, render.RgbStatusBg)
		}
		x = buf.Text(x, 0, s.text, s.color, render.RgbStatusBg)
	}
}

func (r *StatusBarRenderer) renderBottom(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.Height - 1
	text, color := r.message(ctx)
	if text == "" {
		return
	}
	buf.Fill(0, y, ctx.Width, render.RgbStatusBg)
	buf.Text(1, y, text, color, render.RgbStatusBg)
}

// message picks the bottom line: an explicit message wins over the orbit tool readout
func (r *StatusBarRenderer) message(ctx render.RenderContext) (string, core.RGB) {
	if ctx.HUD.Message != "" {
		return ctx.HUD.Message, render.RgbStatusFg
	}
	if !ctx.ToolActive {
		return "", render.RgbStatusFg
	}
	if ctx.PreviewErr != nil {
		return "orbit: " + ctx.PreviewErr.Error(), render.RgbWarning
	}
	if sol := ctx.Preview; sol != nil {
		dir := "ccw"
		if sol.Clockwise {
			dir = "cw"
		}
		return strings.Join([]string{
			fmt.Sprintf("orbit a %.1f", sol.SemiMajorAxis),
			fmt.Sprintf("e %.2f", sol.Eccentricity),
			fmt.Sprintf("T %.2f", sol.Period),
			dir,
			"click to place, esc cancels",
		}, "  "), render.RgbPreview
	}
	return "orbit tool: click a center body, then the radius point", render.RgbPreview
}
