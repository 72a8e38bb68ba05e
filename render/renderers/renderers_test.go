package renderers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/orbit"
	"github.com/lixenwraith/gravsim/render"
	"github.com/lixenwraith/gravsim/vmath"
)

var red = core.RGB{R: 255}

func newSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Camera: engine.Camera{Zoom: 1, Viewport: vmath.V(40, 20)},
		Extent: vmath.NewBox(vmath.V(0, 0), 40, 20),
		Config: engine.DefaultConfig(),
		Bodies: []engine.BodyView{
			{ID: 1, Pos: vmath.V(10, 6), Mass: 10, Radius: 2, Color: red},
		},
	}
}

func newContext(snap *engine.Snapshot) (render.RenderContext, *render.RenderBuffer) {
	return render.RenderContext{Snapshot: snap, Width: 120, Height: 10}, render.NewRenderBuffer(120, 10)
}

func rowText(buf *render.RenderBuffer, y int) string {
	var sb strings.Builder
	for x := 0; x < buf.Width(); x++ {
		r, ok := buf.Cell(x, y)
		if !ok {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestBodyFollowsCamera(t *testing.T) {
	snap := newSnapshot()
	ctx, buf := newContext(snap)
	NewBodyRenderer().Render(ctx, buf)
	c, lit := buf.Pixel(10, 6)
	require.True(t, lit)
	assert.Equal(t, red, c)

	snap.Camera.Offset = vmath.V(5, 0)
	buf.Clear()
	NewBodyRenderer().Render(ctx, buf)
	_, lit = buf.Pixel(5, 6)
	assert.True(t, lit)
	_, lit = buf.Pixel(10, 6)
	assert.False(t, lit)
}

func TestBlackHoleAndTrackedMarker(t *testing.T) {
	snap := newSnapshot()
	snap.Bodies[0].BlackHole = true
	snap.Bodies[0].Radius = 3
	snap.Camera.Target = engine.BodyTarget(1)
	ctx, buf := newContext(snap)
	NewBodyRenderer().Render(ctx, buf)

	c, lit := buf.Pixel(10, 6)
	require.True(t, lit)
	assert.Equal(t, core.RGBBlack, c)
	c, _ = buf.Pixel(13, 6)
	assert.Equal(t, core.RGBBlackHole, c)
	c, _ = buf.Pixel(15, 6)
	assert.Equal(t, render.RgbTrackMarker, c)
}

func TestTrackedOrbitResolvesBody(t *testing.T) {
	snap := newSnapshot()
	snap.Orbits = []engine.OrbitView{{Spec: core.OrbitSpec{ID: 4, BodyID: 1}}}
	snap.Camera.Target = engine.OrbitTarget(4)
	assert.Equal(t, core.BodyID(1), trackedBody(snap))

	snap.Camera.Target = engine.OrbitTarget(5)
	assert.Zero(t, trackedBody(snap))
}

func TestTrailFadesTowardOldest(t *testing.T) {
	snap := newSnapshot()
	snap.Bodies[0].Color = core.RGB{R: 200, G: 200, B: 200}
	snap.Bodies[0].Trail = [][]vmath.Vec{{vmath.V(0, 1), vmath.V(10, 1), vmath.V(20, 1)}}
	ctx, buf := newContext(snap)

	r := NewTrailRenderer()
	require.True(t, r.IsVisible())
	r.Render(ctx, buf)
	old, lit := buf.Pixel(2, 1)
	require.True(t, lit)
	recent, lit := buf.Pixel(18, 1)
	require.True(t, lit)
	assert.Less(t, old.R, recent.R)

	r.Toggle()
	assert.False(t, r.IsVisible())
}

func TestTrailSegmentsAreNotJoined(t *testing.T) {
	snap := newSnapshot()
	snap.Bodies[0].Trail = [][]vmath.Vec{
		{vmath.V(36, 3), vmath.V(39, 3)},
		{vmath.V(0, 3), vmath.V(3, 3)},
	}
	ctx, buf := newContext(snap)
	NewTrailRenderer().Render(ctx, buf)
	_, lit := buf.Pixel(20, 3)
	assert.False(t, lit, "wrap gap stays empty")
	_, lit = buf.Pixel(37, 3)
	assert.True(t, lit)
}

func TestOrbitPathUsesBodyColor(t *testing.T) {
	snap := newSnapshot()
	snap.Orbits = []engine.OrbitView{{
		Spec: core.OrbitSpec{ID: 1, BodyID: 1},
		Path: []vmath.Vec{vmath.V(0, 16), vmath.V(30, 16)},
	}}
	ctx, buf := newContext(snap)
	NewOrbitPathRenderer().Render(ctx, buf)
	c, lit := buf.Pixel(15, 16)
	require.True(t, lit)
	assert.Equal(t, red.Scale(orbitDim), c)

	snap.Orbits[0].Tracked = true
	buf.Clear()
	NewOrbitPathRenderer().Render(ctx, buf)
	c, _ = buf.Pixel(15, 16)
	assert.Equal(t, red.Scale(orbitTracked), c)
}

func TestPreviewDrawsOnlyWhileToolActive(t *testing.T) {
	snap := newSnapshot()
	ctx, buf := newContext(snap)
	ctx.Preview = &orbit.Solution{
		Center: vmath.V(5, 5),
		Pos:    vmath.V(15, 5),
		Vel:    vmath.V(0, -3),
		Path:   []vmath.Vec{vmath.V(15, 5), vmath.V(5, 15), vmath.V(-5, 5)},
	}

	NewPreviewRenderer().Render(ctx, buf)
	_, lit := buf.Pixel(14, 5)
	assert.False(t, lit)

	ctx.ToolActive = true
	NewPreviewRenderer().Render(ctx, buf)
	c, lit := buf.Pixel(14, 5)
	require.True(t, lit)
	assert.Equal(t, render.RgbPreview, c)
	c, _ = buf.Pixel(15, 2)
	assert.Equal(t, render.RgbStatusAccent, c, "velocity arrow points up")
}

func TestStatusBar(t *testing.T) {
	snap := newSnapshot()
	snap.Config.Paused = true
	snap.Config.InvertGravity = true
	ctx, buf := newContext(snap)
	ctx.HUD.Muted = true
	NewStatusBarRenderer().Render(ctx, buf)

	top := rowText(buf, 0)
	assert.Contains(t, top, "PAUSED")
	assert.Contains(t, top, "inv")
	assert.Contains(t, top, "merge")
	assert.Contains(t, top, "mute")
	assert.Equal(t, strings.Repeat(" ", 120), rowText(buf, 9), "no message line when idle")
}

func TestStatusBarMessages(t *testing.T) {
	snap := newSnapshot()
	ctx, buf := newContext(snap)
	ctx.ToolActive = true
	ctx.PreviewErr = fmt.Errorf("%w: radius 0", engine.ErrInvalidOrbitGeometry)
	NewStatusBarRenderer().Render(ctx, buf)
	assert.Contains(t, rowText(buf, 9), "orbit: invalid orbit geometry")

	buf.Clear()
	ctx.PreviewErr = nil
	ctx.Preview = &orbit.Solution{SemiMajorAxis: 120, Eccentricity: 0.25, Clockwise: true}
	NewStatusBarRenderer().Render(ctx, buf)
	bottom := rowText(buf, 9)
	assert.Contains(t, bottom, "a 120.0")
	assert.Contains(t, bottom, " cw")

	buf.Clear()
	ctx.HUD.Message = "config saved"
	NewStatusBarRenderer().Render(ctx, buf)
	assert.Contains(t, rowText(buf, 9), "config saved")
}

func TestInfoPanel(t *testing.T) {
	snap := newSnapshot()
	ctx, buf := newContext(snap)
	NewInfoRenderer().Render(ctx, buf)
	assert.NotContains(t, rowText(buf, 2), "body")

	snap.Info = &engine.Info{Target: engine.OrbitTarget(3), BodyID: 7, Eccentricity: 0.5}
	NewInfoRenderer().Render(ctx, buf)
	assert.Contains(t, rowText(buf, 2), "orbit #3  body #7")
	assert.NotContains(t, rowText(buf, 9), "e ", "panel stops above the message line")

	ctx.Height = 20
	buf = render.NewRenderBuffer(120, 20)
	NewInfoRenderer().Render(ctx, buf)
	assert.Contains(t, rowText(buf, 11), "e     0.500")
}

func TestRegisterAllRendersFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 10)

	o := render.NewRenderOrchestrator(screen)
	set := RegisterAll(o, []string{"q  quit"})
	assert.False(t, set.Help.IsVisible())
	set.Help.Toggle()

	o.RenderFrame(render.RenderContext{Snapshot: newSnapshot()})
	r, _, _, _ := screen.GetContent(10, 3)
	assert.Equal(t, '▀', r, "body pixel at (10, 6) is the top half of row 3")
	assert.Contains(t, rowText(o.Buffer(), 4), "q  quit")
}
