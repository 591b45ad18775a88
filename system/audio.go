package system

import (
	"sync/atomic"

	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/status"
)

// AudioSystem pauses the ambient loop with the game and mirrors audio state into metrics
// Player may be nil when audio is disabled
type AudioSystem struct {
	engine.SystemBase

	statMuted  *atomic.Bool
	statSilent *atomic.Bool
}

// NewAudioSystem creates the audio bridge system
func NewAudioSystem(world *engine.World) *AudioSystem {
	s := &AudioSystem{SystemBase: engine.NewSystemBase(world)}
	s.statMuted = s.Resource.Status.Bools.Get(status.KeyAudioMuted)
	s.statSilent = s.Resource.Status.Bools.Get(status.KeyAudioSilent)
	return s
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStateChanged,
	}
}

// HandleEvent pauses playback while the game is paused
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	player := s.Resource.Audio.Player
	if player == nil {
		return
	}
	if payload, ok := ev.Payload.(*event.StateChangedPayload); ok {
		player.SetPaused(payload.To == core.StatePaused)
	}
}

// Update publishes mute and device state
func (s *AudioSystem) Update() {
	player := s.Resource.Audio.Player
	if player == nil {
		s.statSilent.Store(true)
		return
	}
	s.statMuted.Store(player.IsMuted())
	s.statSilent.Store(!player.IsRunning())
}
