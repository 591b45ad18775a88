package component

import "github.com/lixenwraith/poly/parameter"

// CloudComponent marks a scrolling cloud sprite
type CloudComponent struct {
	// Speed is horizontal velocity in world units per second
	Speed float64
}

// NewCloud returns a cloud at the default drift speed
func NewCloud() CloudComponent {
	return CloudComponent{Speed: parameter.CloudDefaultSpeed}
}
