package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/status"
)

// GameContext owns the world, its clock and the event routing between systems
// Backends drive it by calling Tick once per frame
type GameContext struct {
	World  *World
	Clock  *PausableClock
	Events *event.EventQueue
	Status *status.Registry

	res CoreResources

	startup  []StartupSystem
	started  bool
	handlers map[event.EventType][]EventHandler

	lastTick time.Time
	frame    atomic.Int64
}

// NewGameContext creates a world with all core resources installed
func NewGameContext(provider TimeProvider) *GameContext {
	world := NewWorld()
	clock := NewPausableClock(provider)
	queue := event.NewEventQueue()
	registry := status.NewRegistry()

	now := clock.Now()
	AddResource(world.Resources, &TimeResource{GameTime: now, RealTime: clock.RealTime()})
	AddResource(world.Resources, &ViewportResource{})
	AddResource(world.Resources, &StateResource{Current: core.DefaultAppState})
	AddResource(world.Resources, &EventQueueResource{Queue: queue})
	AddResource(world.Resources, &ClockResource{Clock: clock})
	AddResource(world.Resources, &AudioResource{})
	AddResource(world.Resources, registry)

	ctx := &GameContext{
		World:    world,
		Clock:    clock,
		Events:   queue,
		Status:   registry,
		handlers: make(map[event.EventType][]EventHandler),
		lastTick: now,
	}
	ctx.res = GetCoreResources(world)
	return ctx
}

// Publish installs a resource contributed by a service
// An AudioPlayer fills the existing AudioResource so cached pointers stay valid
func (ctx *GameContext) Publish(resource any) {
	ctx.World.RunSafe(func() {
		switch r := resource.(type) {
		case AudioPlayer:
			ctx.res.Audio.Player = r
		default:
			AddResource(ctx.World.Resources, resource)
		}
	})
}

// Resources returns the cached core resources
func (ctx *GameContext) Resources() CoreResources {
	return ctx.res
}

// AddPlugin applies a plugin to the context
func (ctx *GameContext) AddPlugin(plugins ...Plugin) {
	for _, p := range plugins {
		p(ctx)
	}
}

// AddStartupSystem queues a system to run once before the first tick
func (ctx *GameContext) AddStartupSystem(s StartupSystem) {
	ctx.startup = append(ctx.startup, s)
}

// AddSystem registers a per-tick system, and its event handler if it has one
func (ctx *GameContext) AddSystem(s System) {
	ctx.World.AddSystem(s)
	if h, ok := s.(EventHandler); ok {
		ctx.RegisterEventHandler(h)
	}
}

// RegisterEventHandler routes the handler's declared event types to it
func (ctx *GameContext) RegisterEventHandler(h EventHandler) {
	for _, t := range h.EventTypes() {
		ctx.handlers[t] = append(ctx.handlers[t], h)
	}
}

// PushEvent queues an event stamped with the current frame
// Safe to call from any goroutine
func (ctx *GameContext) PushEvent(eventType event.EventType, payload any) {
	ctx.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   ctx.frame.Load(),
	})
}

// SetViewport records the render target size in pixels
func (ctx *GameContext) SetViewport(width, height int) {
	ctx.World.RunSafe(func() {
		ctx.res.Viewport.Width = width
		ctx.res.Viewport.Height = height
	})
}

// Startup runs startup systems once, Tick calls it implicitly
func (ctx *GameContext) Startup() {
	ctx.World.RunSafe(ctx.startupLocked)
}

func (ctx *GameContext) startupLocked() {
	if ctx.started {
		return
	}
	ctx.started = true
	for _, s := range ctx.startup {
		s.Startup()
	}
}

// Tick advances game time, dispatches pending events and runs every system
func (ctx *GameContext) Tick() {
	ctx.World.RunSafe(func() {
		ctx.startupLocked()

		now := ctx.Clock.Now()
		dt := now.Sub(ctx.lastTick)
		if dt < 0 {
			dt = 0
		}
		if dt > parameter.MaxFrameDelta {
			dt = parameter.MaxFrameDelta
		}
		ctx.lastTick = now

		frame := ctx.frame.Add(1)
		ctx.res.Time.Update(now, ctx.Clock.RealTime(), dt, frame)

		ctx.dispatchEvents()
		ctx.World.UpdateLocked()
		// Events emitted by systems this tick are handled before the frame is drawn
		ctx.dispatchEvents()
	})
}

func (ctx *GameContext) dispatchEvents() {
	for _, ev := range ctx.Events.Consume() {
		for _, h := range ctx.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// Frame returns the number of completed ticks
func (ctx *GameContext) Frame() int64 {
	return ctx.frame.Load()
}

// QuitRequested reports whether a system asked the backend to exit
func (ctx *GameContext) QuitRequested() bool {
	var quit bool
	ctx.World.RunSafe(func() {
		quit = ctx.res.State.QuitRequested
	})
	return quit
}

// Snapshot runs fn under the update lock so renderers see a consistent world
func (ctx *GameContext) Snapshot(fn func()) {
	ctx.World.RunSafe(fn)
}
