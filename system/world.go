package system

import (
	"github.com/lixenwraith/poly/component"
	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/parameter"
)

// SceneStartup spawns the static layered backdrop
type SceneStartup struct {
	engine.SystemBase
}

// NewSceneStartup creates the scene startup system
func NewSceneStartup(world *engine.World) *SceneStartup {
	return &SceneStartup{SystemBase: engine.NewSystemBase(world)}
}

// Name returns system's name
func (s *SceneStartup) Name() string {
	return "scene"
}

// Startup spawns door, shop and grass at the origin
func (s *SceneStartup) Startup() {
	// Door keeps its native pixel size
	spawnSprite(s.World, s.Component, component.SpriteComponent{Image: parameter.ImageDoor}, 0, parameter.LayerDecor)
	spawnSprite(s.World, s.Component,
		component.WithSize(parameter.ImageShop, parameter.SceneWidth, parameter.SceneHeight), 0, parameter.LayerBackground)
	spawnSprite(s.World, s.Component,
		component.WithSize(parameter.ImageGrass, parameter.SceneWidth, parameter.SceneHeight), 0, parameter.LayerWorld)
}

// spawnSprite creates a named sprite entity at (x, 0) on the given layer
func spawnSprite(w *engine.World, cs engine.ComponentStore, sprite component.SpriteComponent, x float64, layer parameter.Layer) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, cs.Name, component.NameComponent{Name: sprite.Image})
	engine.With(eb, cs.Transform, component.TransformComponent{X: x, Z: layer.Z()})
	engine.With(eb, cs.Sprite, sprite)
	return eb.Build()
}
