package event

import "github.com/lixenwraith/poly/core"

// CloudRecycledPayload carries the despawned cloud and its replacement
type CloudRecycledPayload struct {
	Old   core.Entity
	New   core.Entity
	Image string
}

// AssetReloadedPayload names the image that changed on disk
type AssetReloadedPayload struct {
	Path    string
	Version uint64
}

// StateChangedPayload carries both sides of an AppState transition
type StateChangedPayload struct {
	From core.AppState
	To   core.AppState
}
