package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/event"
)

// AudioPlayer defines the minimal audio interface used by the simulation front end
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioService wraps SoundManager as a Service and turns tick notices into cues
// Handles graceful degradation when no output device is available
type AudioService struct {
	manager  *SoundManager
	player   AudioPlayer
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - true starts muted; otherwise the environment decides
func (s *AudioService) Init(args ...any) error {
	config := LoadAudioConfig()
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok && muted {
			config.Enabled = false
		}
	}
	s.manager = NewSoundManager(config)
	s.player = s.manager
	return nil
}

// Start implements Service
// Opens the output device; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio: disabled: %v", err)
		s.disabled.Store(true)
		return nil
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the active player, nil if audio is disabled
func (s *AudioService) Player() AudioPlayer {
	if s.disabled.Load() || s.player == nil {
		return nil
	}
	return s.player
}

// OnTick implements engine.TickObserver
// Each cue plays at most once per tick however many notices map to it
func (s *AudioService) OnTick(report engine.TickReport, _ *engine.Snapshot) {
	player := s.Player()
	if player == nil || len(report.Notices) == 0 {
		return
	}

	var pending [core.SoundTypeCount]bool
	for _, n := range report.Notices {
		if cue, ok := SoundFor(n.Type); ok {
			pending[cue] = true
		}
	}
	for cue, on := range pending {
		if on {
			player.Play(core.SoundType(cue))
		}
	}
}

// SoundFor maps a notice to its cue; rejections and removals are silent
func SoundFor(n event.NoticeType) (core.SoundType, bool) {
	switch n {
	case event.NoticeMerged:
		return core.SoundMerge, true
	case event.NoticeBounced, event.NoticeRepelled:
		return core.SoundBounce, true
	case event.NoticeDespawned:
		return core.SoundDespawn, true
	case event.NoticeSpawned:
		return core.SoundSpawn, true
	case event.NoticeWrapped:
		return core.SoundWrap, true
	default:
		return 0, false
	}
}
