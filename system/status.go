package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/status"
)

// StatusSystem samples world statistics into the status registry for the inspector
type StatusSystem struct {
	engine.SystemBase

	statEntities   *atomic.Int64
	statClouds     *atomic.Int64
	statRecycled   *atomic.Int64
	statFrame      *atomic.Int64
	statReloads    *atomic.Int64
	statState      *status.AtomicString
	statLastReload *status.AtomicString
	statFPS        *status.AtomicFloat

	windowStart  time.Time
	windowFrames int
}

// NewStatusSystem creates the status system
func NewStatusSystem(world *engine.World) *StatusSystem {
	s := &StatusSystem{SystemBase: engine.NewSystemBase(world)}
	reg := s.Resource.Status

	s.statEntities = reg.Ints.Get(status.KeyEntities)
	s.statClouds = reg.Ints.Get(status.KeyClouds)
	s.statRecycled = reg.Ints.Get(status.KeyCloudsRecycled)
	s.statFrame = reg.Ints.Get(status.KeyFrame)
	s.statReloads = reg.Ints.Get(status.KeyAssetReloads)
	s.statState = reg.Strings.Get(status.KeyAppState)
	s.statLastReload = reg.Strings.Get(status.KeyAssetLast)
	s.statFPS = reg.Floats.Get(status.KeyFPS)
	return s
}

// Name returns system's name
func (s *StatusSystem) Name() string {
	return "status"
}

// Priority returns the system's priority, runs after gameplay so counts are final
func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

// EventTypes returns the event types StatusSystem counts
func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCloudRecycled,
		event.EventAssetReloaded,
	}
}

// HandleEvent counts recycles and reloads
func (s *StatusSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventCloudRecycled:
		s.statRecycled.Add(1)
	case event.EventAssetReloaded:
		s.statReloads.Add(1)
		if payload, ok := ev.Payload.(*event.AssetReloadedPayload); ok {
			s.statLastReload.Set(payload.Path)
		}
	}
}

// Update refreshes counters and the once-per-second tick rate
func (s *StatusSystem) Update() {
	s.statEntities.Store(int64(s.World.EntityCount()))
	s.statClouds.Store(int64(s.Component.Cloud.Count()))
	s.statFrame.Store(s.Resource.Time.FrameNumber)
	s.statState.Set(s.Resource.State.Current.String())

	now := s.Resource.Time.RealTime
	if s.windowStart.IsZero() {
		s.windowStart = now
		return
	}
	s.windowFrames++
	if elapsed := now.Sub(s.windowStart); elapsed >= time.Second {
		s.statFPS.Set(float64(s.windowFrames) / elapsed.Seconds())
		s.windowStart = now
		s.windowFrames = 0
	}
}
