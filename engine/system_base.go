package engine

// SystemBase provides common dependencies for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  CoreResources
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  GetCoreResources(w),
		Component: GetComponentStore(w),
	}
}
