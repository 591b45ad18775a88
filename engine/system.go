package engine

import "github.com/lixenwraith/poly/event"

// System runs once per tick in Priority order
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// StartupSystem runs once, before the first tick
type StartupSystem interface {
	Name() string
	Startup()
}

// EventHandler is implemented by systems that consume queued events
// GameContext routes events to handlers by the types they declare
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}

// Plugin groups the systems and resources of one feature
type Plugin func(ctx *GameContext)
