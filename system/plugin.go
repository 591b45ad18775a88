// Package system holds the scene's startup and per-tick systems, grouped into plugins
package system

import (
	"github.com/lixenwraith/poly/engine"
)

// DefaultPlugins returns the plugins that make up the scene, in registration order
func DefaultPlugins() []engine.Plugin {
	return []engine.Plugin{
		CameraPlugin,
		UIPlugin,
		WorldPlugin,
		InspectorPlugin,
		ControlPlugin,
	}
}

// CameraPlugin spawns the 2D camera
func CameraPlugin(ctx *engine.GameContext) {
	ctx.AddStartupSystem(NewCameraStartup(ctx.World))
}

// UIPlugin spawns the HUD overlay
func UIPlugin(ctx *engine.GameContext) {
	ctx.AddStartupSystem(NewUIStartup(ctx.World))
}

// WorldPlugin spawns the static backdrop and drives the clouds
func WorldPlugin(ctx *engine.GameContext) {
	ctx.AddStartupSystem(NewSceneStartup(ctx.World))
	ctx.AddSystem(NewCloudMoveSystem(ctx.World))
	ctx.AddSystem(NewCloudSpawnSystem(ctx.World))
}

// InspectorPlugin keeps the metrics shown by the world inspector up to date
// The overlay starts hidden and is toggled by EventInspectorToggle
func InspectorPlugin(ctx *engine.GameContext) {
	ctx.Resources().State.Inspector = false
	ctx.AddSystem(NewStatusSystem(ctx.World))
}

// ControlPlugin routes key-driven toggles and forwards state changes to audio
func ControlPlugin(ctx *engine.GameContext) {
	ctx.AddSystem(NewControlSystem(ctx.World))
	ctx.AddSystem(NewAudioSystem(ctx.World))
}
