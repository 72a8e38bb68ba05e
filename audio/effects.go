package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gravsim/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timings
const (
	mergeDuration   = 260 * time.Millisecond
	bounceDuration  = 40 * time.Millisecond
	despawnDuration = 180 * time.Millisecond
	spawnDuration   = 90 * time.Millisecond
	wrapDuration    = 120 * time.Millisecond

	cueAttack = 5 * time.Millisecond
)

// oscillator generates a wave whose frequency glides linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(s beep.Streamer, d, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, cueAttack, release, rate)
}

// CreateMergeSound is a falling sine thud with a noise crackle layered under it
func CreateMergeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	thud := shaped(NewSweep(140, 45, mergeDuration, WaveSine, rate), mergeDuration, 200*time.Millisecond, rate)
	crackle := shaped(NewOscillator(0, mergeDuration/2, WaveNoise, rate), mergeDuration/2, 100*time.Millisecond, rate)

	mixed := beep.Mix(newVolume(thud, 0.8), newVolume(crackle, 0.2))
	return newVolume(mixed, cfg.EffectVolumes[core.SoundMerge]*cfg.MasterVolume)
}

// CreateBounceSound is a short square click
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	click := shaped(NewOscillator(660, bounceDuration, WaveSquare, rate), bounceDuration, 30*time.Millisecond, rate)
	return newVolume(click, cfg.EffectVolumes[core.SoundBounce]*cfg.MasterVolume)
}

// CreateDespawnSound is a descending saw blip
func CreateDespawnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	blip := shaped(NewSweep(520, 120, despawnDuration, WaveSaw, rate), despawnDuration, 120*time.Millisecond, rate)
	return newVolume(blip, cfg.EffectVolumes[core.SoundDespawn]*cfg.MasterVolume)
}

// CreateSpawnSound is a two-note rising chime
func CreateSpawnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := spawnDuration / 2

	n1 := shaped(NewOscillator(880, half, WaveSine, rate), half, 30*time.Millisecond, rate)
	n2 := shaped(NewOscillator(1318.51, half, WaveSine, rate), half, 40*time.Millisecond, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[core.SoundSpawn]*cfg.MasterVolume)
}

// CreateWrapSound is a filtered noise whoosh rising in pitch
func CreateWrapSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := shaped(NewOscillator(0, wrapDuration, WaveNoise, rate), wrapDuration, 80*time.Millisecond, rate)
	tone := shaped(NewSweep(300, 900, wrapDuration, WaveSine, rate), wrapDuration, 80*time.Millisecond, rate)

	mixed := beep.Mix(newVolume(noise, 0.4), newVolume(tone, 0.6))
	return newVolume(mixed, cfg.EffectVolumes[core.SoundWrap]*cfg.MasterVolume)
}

// SoundEffect returns a fresh streamer for the given cue, nil for unknown types
func SoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundMerge:
		return CreateMergeSound(cfg)
	case core.SoundBounce:
		return CreateBounceSound(cfg)
	case core.SoundDespawn:
		return CreateDespawnSound(cfg)
	case core.SoundSpawn:
		return CreateSpawnSound(cfg)
	case core.SoundWrap:
		return CreateWrapSound(cfg)
	default:
		return nil
	}
}
