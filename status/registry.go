package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys shared by systems, services and the inspector
const (
	KeyFPS            = "frame.fps"
	KeyTPS            = "frame.tps"
	KeyFrame          = "frame.number"
	KeyEntities       = "world.entities"
	KeyClouds         = "world.clouds"
	KeyCloudsRecycled = "world.clouds_recycled"
	KeyAppState       = "app.state"
	KeyBackend        = "app.backend"
	KeySession        = "app.session"
	KeyAudioMuted     = "audio.muted"
	KeyAudioSilent    = "audio.silent"
	KeyAssetReloads   = "asset.reloads"
	KeyAssetLast      = "asset.last_reload"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key: value", grouped by type and sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, v.Get()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %t", k, v.Load()))
	})
	return lines
}
