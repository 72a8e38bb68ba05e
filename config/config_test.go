package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/scene"
	"github.com/lixenwraith/gravsim/vmath"
)

func TestDefaultMatchesEngine(t *testing.T) {
	cfg, err := Default().Engine()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), cfg)
}

func TestParseOverridesDefaults(t *testing.T) {
	f, err := Parse(`
[simulation]
g = 2.5
forcemethod = BarnesHut
invertgravity

[bounds]
mode = portal
zoombounds = true
width = 800

[collision]
mode = repel
repelstrength = 900

[scene]
preset = binary
seed = 42

[services]
metrics = 127.0.0.1:9100
muted = true

[keys]
bind = p toggle_pause
bind = space none
`)
	require.NoError(t, err)

	cfg, err := f.Engine()
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.G)
	assert.True(t, cfg.InvertGravity)
	assert.Equal(t, core.ForceBarnesHut, cfg.ForceMethod)
	assert.Equal(t, core.BoundsPortal, cfg.Bounds)
	assert.True(t, cfg.ZoomBounds)
	assert.Equal(t, 800.0, cfg.WorldWidth)
	assert.Equal(t, engine.DefaultConfig().WorldHeight, cfg.WorldHeight)
	assert.Equal(t, core.CollisionRepel, cfg.Collision)
	assert.Equal(t, 900.0, cfg.RepelStrength)

	opts := f.SceneOptions()
	assert.Equal(t, scene.PresetBinary, opts.Preset)
	assert.Equal(t, uint64(42), opts.Seed)
	assert.Equal(t, vmath.V(400, 360), opts.Center)

	assert.Equal(t, "127.0.0.1:9100", f.Services.Metrics)
	assert.True(t, f.Services.Muted)
	assert.True(t, f.Services.StreamCommands)
	assert.Equal(t, []string{"p toggle_pause", "space none"}, f.Keys.Bind)
}

func TestParseRejectsOutOfRange(t *testing.T) {
	_, err := Parse("[bounds]\nrestitution = 1.5\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrConfigOutOfRange)

	_, err = Parse("[simulation]\ng = 0\n")
	assert.ErrorIs(t, err, engine.ErrConfigOutOfRange)
}

func TestParseRejectsOversizedScene(t *testing.T) {
	_, err := Parse(fmt.Sprintf("[scene]\nbodies = %d\n", parameter.MaxSceneBodies+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrConfigOutOfRange)

	f, err := Parse(fmt.Sprintf("[scene]\nbodies = %d\n", parameter.MaxSceneBodies))
	require.NoError(t, err)
	assert.Equal(t, parameter.MaxSceneBodies, f.SceneOptions().Bodies)
}

func TestParseRejectsUnknownNames(t *testing.T) {
	_, err := Parse("[bounds]\nmode = bouncy\n")
	assert.Error(t, err)

	_, err = Parse("[simulation]\nwarp = 9\n")
	assert.Error(t, err)

	_, err = Parse("[hyperspace]\n")
	assert.Error(t, err)
}

func TestExampleRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExample(&buf))

	f, err := Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
}

func TestLoadFile(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), f)

	path := filepath.Join(t.TempDir(), "gravsim.ini")
	require.NoError(t, os.WriteFile(path, []byte("[camera]\ntrackingrate = 4\n"), 0o644))
	f, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, f.Camera.TrackingRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
