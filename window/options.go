// Package window runs the scene in a desktop window through Ebitengine
package window

import (
	"image/color"

	"github.com/lixenwraith/poly/render"
)

// Options configures the desktop window
type Options struct {
	Title      string
	Width      int
	Height     int
	X, Y       int
	Resizable  bool
	ClearColor color.RGBA
	Sampler    render.Sampler
	// Debug enables Escape to close the window
	Debug bool
}
