package system

import (
	"image/color"

	"github.com/lixenwraith/poly/component"
	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/parameter"
)

// UIStartup spawns the HUD root node and its text
type UIStartup struct {
	engine.SystemBase
}

// NewUIStartup creates the UI startup system
func NewUIStartup(world *engine.World) *UIStartup {
	return &UIStartup{SystemBase: engine.NewSystemBase(world)}
}

// Name returns system's name
func (s *UIStartup) Name() string {
	return "ui"
}

// Startup spawns a translucent strip across the top of the viewport holding the money label
func (s *UIStartup) Startup() {
	root := s.World.NewEntity()
	engine.With(root, s.Component.Name, component.NameComponent{Name: parameter.NameUIRoot})
	engine.With(root, s.Component.UINode, component.UINodeComponent{
		WidthPercent:  parameter.HUDWidthPercent,
		HeightPercent: parameter.HUDHeightPercent,
		Padding:       parameter.HUDPaddingPx,
		CenterItems:   true,
		Background:    core.RGBAf(parameter.HUDPanelR, parameter.HUDPanelG, parameter.HUDPanelB, parameter.HUDPanelA),
	})
	rootEntity := root.Build()

	text := s.World.NewEntity()
	engine.With(text, s.Component.Name, component.NameComponent{Name: parameter.HUDText})
	engine.With(text, s.Component.Parent, component.ParentComponent{Parent: rootEntity})
	engine.With(text, s.Component.UIText, component.UITextComponent{
		Text:     parameter.HUDText,
		FontSize: parameter.HUDFontSize,
		Color:    color.RGBA{255, 255, 255, 255},
	})
	text.Build()
}
