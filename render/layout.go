package render

import (
	"image/color"

	"github.com/lixenwraith/poly/component"
	"github.com/lixenwraith/poly/core"
)

// MeasureFunc returns the advance width and line height of text at a font size in pixels
type MeasureFunc func(text string, size float64) (w, h float64)

// ApproxMeasure assumes half-em glyph advance, used when no font face is available
func ApproxMeasure(text string, size float64) (float64, float64) {
	return float64(len([]rune(text))) * size / 2, size
}

// TextLayout is a text run placed in screen pixels, X/Y is the top-left of its line box
type TextLayout struct {
	Text  string
	Size  float64
	Color color.RGBA
	X, Y  float64
	W, H  float64
}

// HUDLayout is a UI node resolved against the viewport
type HUDLayout struct {
	Panel      Rect
	Content    Rect
	Background color.RGBA
	Texts      []TextLayout
}

// LayoutNode resolves a root UI node and its text children
// Nodes anchor at the viewport's top-left, children flow left to right inside the padding
// With CenterItems children are centered on the cross (vertical) axis
func LayoutNode(viewW, viewH float64, node component.UINodeComponent, texts []component.UITextComponent, measure MeasureFunc) HUDLayout {
	if measure == nil {
		measure = ApproxMeasure
	}

	panel := Rect{
		W: viewW * node.WidthPercent / 100,
		H: viewH * node.HeightPercent / 100,
	}
	content := Rect{
		X: panel.X + node.Padding,
		Y: panel.Y + node.Padding,
		W: max(panel.W-2*node.Padding, 0),
		H: max(panel.H-2*node.Padding, 0),
	}

	layout := HUDLayout{
		Panel:      panel,
		Content:    content,
		Background: node.Background,
		Texts:      make([]TextLayout, 0, len(texts)),
	}

	x := content.X
	for _, t := range texts {
		w, h := measure(t.Text, t.FontSize)
		y := content.Y
		if node.CenterItems {
			y = content.Y + (content.H-h)/2
		}
		layout.Texts = append(layout.Texts, TextLayout{
			Text:  t.Text,
			Size:  t.FontSize,
			Color: t.Color,
			X:     x,
			Y:     y,
			W:     w,
			H:     h,
		})
		x += w
	}
	return layout
}

func (b *Builder) layoutHUD(viewW, viewH float64) []HUDLayout {
	roots := b.world.Query().With(b.cs.UINode).Execute()
	if len(roots) == 0 {
		return nil
	}

	// Children grouped by parent, in spawn order
	children := make(map[core.Entity][]component.UITextComponent)
	for _, e := range b.world.Query().With(b.cs.UIText).With(b.cs.Parent).Execute() {
		parent, _ := b.cs.Parent.Get(e)
		text, _ := b.cs.UIText.Get(e)
		children[parent.Parent] = append(children[parent.Parent], text)
	}

	layouts := make([]HUDLayout, 0, len(roots))
	for _, root := range roots {
		node, _ := b.cs.UINode.Get(root)
		layouts = append(layouts, LayoutNode(viewW, viewH, node, children[root], b.measure))
	}
	return layouts
}
