package renderers

import (
	"fmt"

	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/render"
)

const infoPanelWidth = 26

// InfoRenderer draws the live readout panel at the top right
type InfoRenderer struct{}

func NewInfoRenderer() *InfoRenderer { return &InfoRenderer{} }

// Render implements SystemRenderer
func (r *InfoRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	info := ctx.Snapshot.Info
	if info == nil {
		return
	}
	lines := infoLines(info)
	x := max(ctx.Width-infoPanelWidth-1, 0)
	for i, line := range lines {
		y := 2 + i
		if y >= ctx.Height-1 {
			break
		}
		buf.Fill(x, y, infoPanelWidth, render.RgbStatusBg)
		color := render.RgbStatusFg
		if i == 0 {
			color = render.RgbStatusAccent
		}
		buf.Text(x+1, y, line, color, render.RgbStatusBg)
	}
}

func infoLines(info *engine.Info) []string {
	title := fmt.Sprintf("body #%d", info.BodyID)
	if info.Target.Kind == engine.TargetOrbit {
		title = fmt.Sprintf("orbit #%d  body #%d", info.Target.Orbit, info.BodyID)
	}
	lines := []string{
		title,
		fmt.Sprintf("pos   %.1f, %.1f", info.Pos.X, info.Pos.Y),
		fmt.Sprintf("vel   %.2f, %.2f", info.Vel.X, info.Vel.Y),
		fmt.Sprintf("speed %.4g", info.Speed),
		fmt.Sprintf("mass  %.4g", info.Mass),
		fmt.Sprintf("KE    %.4g", info.Kinetic),
		fmt.Sprintf("PE    %.4g", info.Potential),
		fmt.Sprintf("E     %.4g", info.Total),
	}
	if info.Target.Kind == engine.TargetOrbit {
		lines = append(lines,
			fmt.Sprintf("a     %.4g", info.SemiMajorAxis),
			fmt.Sprintf("e     %.3f", info.Eccentricity),
			fmt.Sprintf("T     %.4g", info.Period),
		)
	}
	return lines
}
