// Package render turns the world into backend-neutral draw lists
package render

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/poly/component"
	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
)

// Rect is an axis-aligned rectangle in screen pixels, origin top-left
type Rect struct {
	X, Y, W, H float64
}

// SpriteDraw is one sprite projected to the screen
type SpriteDraw struct {
	Entity  core.Entity
	Image   string
	Version uint64
	Dst     Rect
	Z       float64
}

// Frame is everything a backend needs to draw one frame
type Frame struct {
	ViewWidth  int
	ViewHeight int
	// Scale is screen pixels per world unit, zero when no camera exists
	Scale     float64
	Sprites   []SpriteDraw
	HUD       []HUDLayout
	Inspector []string
	Paused    bool
}

// Projection maps world coordinates to screen pixels for a camera
// World origin is the camera position at the viewport center, +Y up
type Projection struct {
	Scale            float64
	CenterX, CenterY float64
	CamX, CamY       float64
}

// NewProjection builds the projection of cam at position pos for a viewport
func NewProjection(cam component.CameraComponent, pos component.TransformComponent, viewW, viewH int) Projection {
	return Projection{
		Scale:   cam.Scale(float64(viewW), float64(viewH)),
		CenterX: float64(viewW) / 2,
		CenterY: float64(viewH) / 2,
		CamX:    pos.X,
		CamY:    pos.Y,
	}
}

// ToScreen converts a world point to screen pixels
func (p Projection) ToScreen(x, y float64) (float64, float64) {
	return p.CenterX + (x-p.CamX)*p.Scale, p.CenterY - (y-p.CamY)*p.Scale
}

// SpriteRect returns the screen rectangle of a w x h sprite centered on (x, y)
func (p Projection) SpriteRect(x, y, w, h float64) Rect {
	sx, sy := p.ToScreen(x, y)
	sw, sh := w*p.Scale, h*p.Scale
	return Rect{X: sx - sw/2, Y: sy - sh/2, W: sw, H: sh}
}

// Builder assembles frames from a world
// Callers must hold the world's update lock, see GameContext.Snapshot
type Builder struct {
	world   *engine.World
	res     engine.CoreResources
	cs      engine.ComponentStore
	measure MeasureFunc
}

// NewBuilder creates a frame builder, measure may be nil for the approximate metric
func NewBuilder(world *engine.World, measure MeasureFunc) *Builder {
	if measure == nil {
		measure = ApproxMeasure
	}
	return &Builder{
		world:   world,
		res:     engine.GetCoreResources(world),
		cs:      engine.GetComponentStore(world),
		measure: measure,
	}
}

// Build projects every sprite through the first camera and lays out the HUD
func (b *Builder) Build() Frame {
	view := b.res.Viewport
	f := Frame{
		ViewWidth:  view.Width,
		ViewHeight: view.Height,
		Paused:     b.res.State.Current == core.StatePaused,
	}

	f.HUD = b.layoutHUD(float64(view.Width), float64(view.Height))
	if b.res.State.Inspector {
		f.Inspector = InspectorLines(b.world, b.res.Status)
	}

	proj, ok := b.projection(view.Width, view.Height)
	if !ok {
		return f
	}
	f.Scale = proj.Scale

	var images engine.ImageSource
	if assets, ok := engine.GetResource[*engine.AssetResource](b.world.Resources); ok {
		images = assets.Source
	}

	entities := b.world.Query().With(b.cs.Sprite).With(b.cs.Transform).Execute()
	f.Sprites = make([]SpriteDraw, 0, len(entities))
	for _, e := range entities {
		sprite, _ := b.cs.Sprite.Get(e)
		tr, _ := b.cs.Transform.Get(e)

		var version uint64
		var w, h float64
		if images != nil {
			img, v, err := images.Image(sprite.Image)
			if err == nil {
				version = v
				w, h = float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
			}
		}
		if sprite.CustomSize != nil {
			w, h = sprite.CustomSize.W, sprite.CustomSize.H
		}
		if w == 0 || h == 0 {
			continue
		}

		f.Sprites = append(f.Sprites, SpriteDraw{
			Entity:  e,
			Image:   sprite.Image,
			Version: version,
			Dst:     proj.SpriteRect(tr.X, tr.Y, w, h),
			Z:       tr.Z,
		})
	}

	// Entity ID breaks ties so same-layer sprites keep spawn order
	slices.SortStableFunc(f.Sprites, func(a, b SpriteDraw) int {
		if c := cmp.Compare(a.Z, b.Z); c != 0 {
			return c
		}
		return cmp.Compare(a.Entity, b.Entity)
	})
	return f
}

func (b *Builder) projection(viewW, viewH int) (Projection, bool) {
	cams := b.world.Query().With(b.cs.Camera).Execute()
	if len(cams) == 0 || viewW <= 0 || viewH <= 0 {
		return Projection{}, false
	}
	cam, _ := b.cs.Camera.Get(cams[0])
	pos, _ := b.cs.Transform.Get(cams[0])
	return NewProjection(cam, pos, viewW, viewH), true
}
