package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gravsim/core"
)

// speakerBuffer is the device buffer length
const speakerBuffer = 100 * time.Millisecond

// SoundManager plays one-shot simulation cues through a shared mixer
// Every method is safe to call before Initialize or after Cleanup; plays are then dropped
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	lastPlayed [core.SoundTypeCount]time.Time
	now        func() time.Time

	// output is replaced in tests to avoid opening a device
	output func(rate beep.SampleRate, mixer *beep.Mixer) error
}

// NewSoundManager creates a sound manager, muted unless cfg.Enabled
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
		now:    time.Now,
		output: speakerOutput,
	}
}

func speakerOutput(rate beep.SampleRate, mixer *beep.Mixer) error {
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// Initialize opens the output device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.output(beep.SampleRate(sm.config.SampleRate), sm.mixer); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	// beep has no speaker close; clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a cue, returning false when it was dropped (muted, not running, cooling down)
func (sm *SoundManager) Play(s core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || s < 0 || s >= core.SoundTypeCount {
		return false
	}

	now := sm.now()
	if last := sm.lastPlayed[s]; !last.IsZero() && now.Sub(last) < sm.config.Cooldown {
		return false
	}

	streamer := SoundEffect(s, sm.config)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[s] = now

	// Guards the mixer against the device callback
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted reports mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsRunning reports whether the output device is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Active returns the number of cues still playing
func (sm *SoundManager) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
