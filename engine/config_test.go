package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.CollisionMerge, cfg.Collision)
	assert.Equal(t, core.BoundsHard, cfg.Bounds)
}

func TestSettersRejectAndKeepPrevious(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		set  func() error
		get  func() float64
	}{
		{"time scale high", func() error { return cfg.SetTimeScale(parameter.MaxTimeScale + 1) }, func() float64 { return cfg.TimeScale }},
		{"time scale nan", func() error { return cfg.SetTimeScale(math.NaN()) }, func() float64 { return cfg.TimeScale }},
		{"restitution", func() error { return cfg.SetRestitution(1.5) }, func() float64 { return cfg.Restitution }},
		{"softening zero", func() error { return cfg.SetSoftening(0) }, func() float64 { return cfg.Softening }},
		{"black hole mass", func() error { return cfg.SetBlackHoleMass(-1) }, func() float64 { return cfg.BlackHoleMass }},
		{"gravity below zero", func() error { return cfg.AdjustG(-cfg.G - 1) }, func() float64 { return cfg.G }},
		{"theta", func() error { return cfg.SetTheta(3) }, func() float64 { return cfg.Theta }},
		{"tracking", func() error { return cfg.SetTrackingRate(-1) }, func() float64 { return cfg.TrackingRate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.get()
			err := tt.set()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigOutOfRange)
			assert.Equal(t, before, tt.get())
		})
	}

	require.Error(t, cfg.SetTrailLength(parameter.MaxTrailLength+1))
	assert.Equal(t, parameter.DefaultTrailLength, cfg.TrailLength)
	require.ErrorIs(t, cfg.SetBounds(core.BoundsMode(9)), ErrConfigOutOfRange)
}

func TestSettersAccept(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.SetTimeScale(5))
	require.NoError(t, cfg.AdjustG(0.5))
	require.NoError(t, cfg.SetTrailLength(0))
	assert.Equal(t, 5.0, cfg.TimeScale)
	assert.InDelta(t, parameter.DefaultG+0.5, cfg.G, 1e-12)
	assert.InDelta(t, cfg.Dt*5, cfg.StepDt(), 1e-15)
}

func TestCollisionModesExclusive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetRepel(true)
	assert.Equal(t, core.CollisionRepel, cfg.Collision)
	cfg.SetMerge(true)
	assert.Equal(t, core.CollisionMerge, cfg.Collision)

	// Disabling the inactive mode leaves the active one
	cfg.SetRepel(false)
	assert.Equal(t, core.CollisionMerge, cfg.Collision)
	cfg.SetMerge(false)
	assert.Equal(t, core.CollisionNone, cfg.Collision)
}

func TestInvertGravity(t *testing.T) {
	cfg := DefaultConfig()
	g := cfg.EffectiveG()
	cfg.InvertGravity = true
	assert.Equal(t, -g, cfg.EffectiveG())
}

func TestViewLocked(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.ViewLocked())
	cfg.ZoomBounds = true
	assert.False(t, cfg.ViewLocked())
	cfg.ZoomBounds = false
	cfg.Bounds = core.BoundsSoft
	assert.False(t, cfg.ViewLocked())
}
