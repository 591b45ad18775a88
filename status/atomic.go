package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat provides atomic float64 operations using bit conversion
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores a float64 value atomically
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the float64 value atomically
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// AtomicString stores a string behind an atomic pointer
// Zero value is ready to use (represents "")
type AtomicString struct {
	v atomic.Pointer[string]
}

// Set stores s atomically
func (a *AtomicString) Set(s string) {
	a.v.Store(&s)
}

// Get loads the current string
func (a *AtomicString) Get() string {
	if p := a.v.Load(); p != nil {
		return *p
	}
	return ""
}
