package system

import (
	"log"

	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/parameter"
)

// ControlSystem applies the toggles requested by backend input
type ControlSystem struct {
	engine.SystemBase
}

// NewControlSystem creates the control system
func NewControlSystem(world *engine.World) *ControlSystem {
	return &ControlSystem{SystemBase: engine.NewSystemBase(world)}
}

// Name returns system's name
func (s *ControlSystem) Name() string {
	return "control"
}

// Priority returns the system's priority
func (s *ControlSystem) Priority() int {
	return parameter.PriorityControl
}

// EventTypes returns the event types ControlSystem handles
func (s *ControlSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventInspectorToggle,
		event.EventPauseToggle,
		event.EventMuteToggle,
		event.EventQuitRequest,
	}
}

// HandleEvent processes input toggles
func (s *ControlSystem) HandleEvent(ev event.GameEvent) {
	state := s.Resource.State

	switch ev.Type {
	case event.EventInspectorToggle:
		state.Inspector = !state.Inspector

	case event.EventPauseToggle:
		from := state.Current
		switch from {
		case core.StateInGame:
			s.Resource.Clock.Clock.Pause()
			state.Current = core.StatePaused
		case core.StatePaused:
			s.Resource.Clock.Clock.Resume()
			state.Current = core.StateInGame
		default:
			return
		}
		log.Printf("state: %s -> %s", from, state.Current)
		s.Resource.Events.Queue.Push(event.GameEvent{
			Type:    event.EventStateChanged,
			Payload: &event.StateChangedPayload{From: from, To: state.Current},
			Frame:   ev.Frame,
		})

	case event.EventMuteToggle:
		if player := s.Resource.Audio.Player; player != nil {
			player.ToggleMute()
		}

	case event.EventQuitRequest:
		state.QuitRequested = true
	}
}

// Update implements System interface (no tick-based logic)
func (s *ControlSystem) Update() {}
