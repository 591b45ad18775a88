package engine

import (
	"image"
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/status"
)

// ResourceStore is a thread-safe container for global game resources
// Systems reach shared data (time, viewport, state) without coupling to GameContext
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its dynamic type
// Pointer types are recommended so systems can cache and mutate them
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used for core resources that are installed before any system is built
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps time data for systems
// Updated by GameContext at the start of every tick
type TimeResource struct {
	// GameTime is the current time in the game world (frozen while paused)
	GameTime time.Time

	// RealTime is the wall-clock time
	RealTime time.Time

	// DeltaTime is the game time elapsed since the previous tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// DeltaSeconds returns DeltaTime as float seconds
func (tr *TimeResource) DeltaSeconds() float64 {
	return tr.DeltaTime.Seconds()
}

// ViewportResource holds the render target size in pixels
// For the terminal backend a pixel is half a cell
type ViewportResource struct {
	Width  int
	Height int
}

// StateResource holds app-level toggles written by ControlSystem
type StateResource struct {
	Current       core.AppState
	Inspector     bool
	QuitRequested bool
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// ClockResource exposes the pausable game clock
type ClockResource struct {
	Clock *PausableClock
}

// AudioPlayer is the minimal audio interface used by game systems
type AudioPlayer interface {
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
	SetPaused(paused bool)
}

// AudioResource wraps the audio player, Player is nil until the audio service contributes it
type AudioResource struct {
	Player AudioPlayer
}

// ImageSource resolves sprite image paths to decoded images
// The version changes whenever the image is reloaded
type ImageSource interface {
	Image(path string) (image.Image, uint64, error)
}

// AssetResource exposes the asset cache to systems and renderers
// Contributed by the asset service, absent in headless tests
type AssetResource struct {
	Source ImageSource
}

// CoreResources provides cached pointers to singleton resources
type CoreResources struct {
	Time     *TimeResource
	Viewport *ViewportResource
	State    *StateResource
	Events   *EventQueueResource
	Clock    *ClockResource
	Audio    *AudioResource
	Status   *status.Registry
}

// GetCoreResources populates CoreResources from the world's resource store
// Call once during system construction, pointers remain valid for application lifetime
func GetCoreResources(w *World) CoreResources {
	return CoreResources{
		Time:     MustGetResource[*TimeResource](w.Resources),
		Viewport: MustGetResource[*ViewportResource](w.Resources),
		State:    MustGetResource[*StateResource](w.Resources),
		Events:   MustGetResource[*EventQueueResource](w.Resources),
		Clock:    MustGetResource[*ClockResource](w.Resources),
		Audio:    MustGetResource[*AudioResource](w.Resources),
		Status:   MustGetResource[*status.Registry](w.Resources),
	}
}
