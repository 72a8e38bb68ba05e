package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/gravsim/core"
)

// AudioConfig holds mixer settings for simulation sound cues
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [core.SoundTypeCount]float64
	SampleRate    int
	// Cooldown is the minimum spacing between two plays of the same cue
	Cooldown time.Duration
}

// DefaultAudioConfig returns the configuration used when nothing is overridden
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		Cooldown:     60 * time.Millisecond,
	}
	cfg.EffectVolumes[core.SoundMerge] = 0.8
	cfg.EffectVolumes[core.SoundBounce] = 0.4
	cfg.EffectVolumes[core.SoundDespawn] = 0.5
	cfg.EffectVolumes[core.SoundSpawn] = 0.3
	cfg.EffectVolumes[core.SoundWrap] = 0.3
	return cfg
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("GRAVSIM_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100
	if volume := os.Getenv("GRAVSIM_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-cue volumes as JSON keyed by sound name, e.g. {"merge":0.9,"bounce":0.2}
	if effectVols := os.Getenv("GRAVSIM_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("GRAVSIM_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if cooldown := os.Getenv("GRAVSIM_SFX_COOLDOWN"); cooldown != "" {
		if val, err := time.ParseDuration(cooldown); err == nil && val >= 0 {
			cfg.Cooldown = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
