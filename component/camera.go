package component

// CameraComponent is a 2D orthographic camera using AutoMin scaling:
// the projection keeps aspect ratio and never shows less than MinWidth x MinHeight world units
type CameraComponent struct {
	MinWidth  float64
	MinHeight float64
}

// Scale returns pixels per world unit for a viewport of the given size
func (c CameraComponent) Scale(viewW, viewH float64) float64 {
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		return 1
	}
	return min(viewW/c.MinWidth, viewH/c.MinHeight)
}
