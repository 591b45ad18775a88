package component

import (
	"image/color"

	"github.com/lixenwraith/poly/core"
)

// UINodeComponent is a rectangular layout box in screen space
// Width and height are percentages of the viewport, padding is in pixels
type UINodeComponent struct {
	WidthPercent  float64
	HeightPercent float64
	Padding       float64
	CenterItems   bool
	Background    color.RGBA
}

// UITextComponent is a single line of text laid out inside its parent node
type UITextComponent struct {
	Text     string
	FontSize float64
	Color    color.RGBA
}

// ParentComponent links a UI child to its node
type ParentComponent struct {
	Parent core.Entity
}
