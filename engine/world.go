package engine

import (
	"reflect"
	"slices"
	"sync"

	"github.com/lixenwraith/poly/core"
)

// World contains all entities, their components in typed stores, and the resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Resources *ResourceStore

	stores map[reflect.Type]AnyStore
	names  map[reflect.Type]string

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Resources:    NewResourceStore(),
		stores:       make(map[reflect.Type]AnyStore),
		names:        make(map[reflect.Type]string),
		systems:      make([]System, 0),
	}
}

// GetStore returns the store for component type T, creating it on first use
// Pointers stay valid for the world's lifetime, systems cache them at construction
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.mu.RLock()
	if s, ok := w.stores[t]; ok {
		w.mu.RUnlock()
		return s.(*Store[T])
	}
	w.mu.RUnlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	w.names[t] = t.Name()
	return s
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity removes the entity and all its components
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.alive[e]; !ok {
		return
	}
	delete(w.alive, e)
	for _, s := range w.stores {
		s.Remove(e)
	}
}

// IsAlive reports whether the entity was created and not yet destroyed
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// Entities returns all live entities in creation order
func (w *World) Entities() []core.Entity {
	w.mu.RLock()
	result := make([]core.Entity, 0, len(w.alive))
	for e := range w.alive {
		result = append(result, e)
	}
	w.mu.RUnlock()

	slices.Sort(result)
	return result
}

// ComponentNames returns the sorted type names of the entity's components
func (w *World) ComponentNames(e core.Entity) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var names []string
	for t, s := range w.stores {
		if s.Has(e) {
			names = append(names, w.names[t])
		}
	}
	slices.Sort(names)
	return names
}

// Clear removes all entities and components, systems and resources are kept
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	for _, s := range w.stores {
		s.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
// Renderers use it to read a consistent snapshot between ticks
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}
