package system

import (
	"github.com/lixenwraith/poly/component"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/parameter"
)

// CameraStartup spawns the orthographic camera with AutoMin scaling
type CameraStartup struct {
	engine.SystemBase
}

// NewCameraStartup creates the camera startup system
func NewCameraStartup(world *engine.World) *CameraStartup {
	return &CameraStartup{SystemBase: engine.NewSystemBase(world)}
}

// Name returns system's name
func (s *CameraStartup) Name() string {
	return "camera"
}

// Startup spawns the camera at the world origin
func (s *CameraStartup) Startup() {
	eb := s.World.NewEntity()
	engine.With(eb, s.Component.Name, component.NameComponent{Name: parameter.NameCamera})
	engine.With(eb, s.Component.Transform, component.TransformComponent{})
	engine.With(eb, s.Component.Camera, component.CameraComponent{
		MinWidth:  parameter.CameraMinWidth,
		MinHeight: parameter.CameraMinHeight,
	})
	eb.Build()
}
