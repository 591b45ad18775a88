package system

import (
	"github.com/lixenwraith/poly/component"
	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/parameter"
)

// CloudImage picks the cloud sprite for spawn slot i
// i=0 large, i=1 small, i=2 medium
func CloudImage(i int) string {
	switch {
	case i%3 == 0:
		return parameter.ImageCloudL
	case i%2 == 0:
		return parameter.ImageCloudM
	default:
		return parameter.ImageCloudS
	}
}

// CloudMoveSystem drifts every cloud to the right at its own speed
type CloudMoveSystem struct {
	engine.SystemBase
}

// NewCloudMoveSystem creates the cloud movement system
func NewCloudMoveSystem(world *engine.World) *CloudMoveSystem {
	return &CloudMoveSystem{SystemBase: engine.NewSystemBase(world)}
}

// Name returns system's name
func (s *CloudMoveSystem) Name() string {
	return "cloud_move"
}

// Priority returns the system's priority, movement runs before recycling
func (s *CloudMoveSystem) Priority() int {
	return parameter.PriorityCloudMove
}

// Update advances x by speed * delta seconds
func (s *CloudMoveSystem) Update() {
	if s.Resource.State.Current != core.StateInGame {
		return
	}

	dt := s.Resource.Time.DeltaSeconds()
	clouds := s.World.Query().
		With(s.Component.Cloud).
		With(s.Component.Transform).
		Execute()

	for _, e := range clouds {
		cloud, _ := s.Component.Cloud.Get(e)
		tr, _ := s.Component.Transform.Get(e)
		tr.X += cloud.Speed * dt
		s.Component.Transform.Set(e, tr)
	}
}

// CloudSpawnSystem seeds the initial clouds and recycles those that leave the scene
type CloudSpawnSystem struct {
	engine.SystemBase
}

// NewCloudSpawnSystem creates the cloud spawn system
func NewCloudSpawnSystem(world *engine.World) *CloudSpawnSystem {
	return &CloudSpawnSystem{SystemBase: engine.NewSystemBase(world)}
}

// Name returns system's name
func (s *CloudSpawnSystem) Name() string {
	return "cloud_spawn"
}

// Priority returns the system's priority
func (s *CloudSpawnSystem) Priority() int {
	return parameter.PriorityCloudSpawn
}

// Update spawns the first clouds when none exist, then replaces every cloud past the right edge
func (s *CloudSpawnSystem) Update() {
	if s.Resource.State.Current != core.StateInGame {
		return
	}

	if s.Component.Cloud.Count() == 0 {
		for i := range parameter.CloudCount {
			s.spawnCloud(CloudImage(i), parameter.CloudSpacing*float64(i))
		}
		return
	}

	clouds := s.World.Query().
		With(s.Component.Cloud).
		With(s.Component.Transform).
		With(s.Component.Sprite).
		Execute()

	for _, e := range clouds {
		tr, _ := s.Component.Transform.Get(e)
		if tr.X < parameter.CloudRecycleX {
			continue
		}

		sprite, _ := s.Component.Sprite.Get(e)
		s.World.DestroyEntity(e)
		replacement := s.spawnCloud(sprite.Image, parameter.CloudRespawnX)

		payload := &event.CloudRecycledPayload{Old: e, New: replacement, Image: sprite.Image}
		s.Resource.Events.Queue.Push(event.GameEvent{
			Type:    event.EventCloudRecycled,
			Payload: payload,
			Frame:   s.Resource.Time.FrameNumber,
		})
	}
}

func (s *CloudSpawnSystem) spawnCloud(image string, x float64) core.Entity {
	e := spawnSprite(s.World, s.Component,
		component.WithSize(image, parameter.SceneWidth, parameter.SceneHeight), x, parameter.LayerWorld)
	s.Component.Cloud.Set(e, component.NewCloud())
	return e
}
