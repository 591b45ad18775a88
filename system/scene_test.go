package system

import (
	"testing"

	"github.com/lixenwraith/poly/component"
	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/parameter"
)

func findByName(ctx *engine.GameContext, cs engine.ComponentStore, name string) (core.Entity, bool) {
	for _, e := range ctx.World.Entities() {
		if n, ok := cs.Name.Get(e); ok && n.Name == name {
			return e, true
		}
	}
	return 0, false
}

func TestStaticSpritesOnLayers(t *testing.T) {
	ctx, _, cs := newScene(t)
	ctx.Startup()

	tests := []struct {
		image  string
		layer  parameter.Layer
		native bool
	}{
		{parameter.ImageDoor, parameter.LayerDecor, true},
		{parameter.ImageShop, parameter.LayerBackground, false},
		{parameter.ImageGrass, parameter.LayerWorld, false},
	}

	for _, tt := range tests {
		t.Run(tt.image, func(t *testing.T) {
			e, ok := findByName(ctx, cs, tt.image)
			if !ok {
				t.Fatalf("Sprite %s not spawned", tt.image)
			}
			tr, _ := cs.Transform.Get(e)
			if tr.X != 0 || tr.Y != 0 || tr.Z != tt.layer.Z() {
				t.Errorf("Expected origin on layer %d, got %+v", tt.layer, tr)
			}
			sprite, _ := cs.Sprite.Get(e)
			if tt.native && sprite.CustomSize != nil {
				t.Error("Expected native size")
			}
			if !tt.native && (sprite.CustomSize == nil || *sprite.CustomSize != (component.Size{W: 160, H: 90})) {
				t.Errorf("Expected 160x90, got %+v", sprite.CustomSize)
			}
			if cs.Cloud.Has(e) {
				t.Error("Static sprite must not be a cloud")
			}
		})
	}
}

func TestCameraSpawned(t *testing.T) {
	ctx, _, cs := newScene(t)
	ctx.Startup()

	e, ok := findByName(ctx, cs, parameter.NameCamera)
	if !ok {
		t.Fatal("Camera not spawned")
	}
	cam, ok := cs.Camera.Get(e)
	if !ok || cam.MinWidth != 160 || cam.MinHeight != 90 {
		t.Errorf("Expected AutoMin 160x90 camera, got %+v", cam)
	}
	if cs.Camera.Count() != 1 {
		t.Errorf("Expected a single camera, got %d", cs.Camera.Count())
	}
}

func TestUIRootAndText(t *testing.T) {
	ctx, _, cs := newScene(t)
	ctx.Startup()

	root, ok := findByName(ctx, cs, parameter.NameUIRoot)
	if !ok {
		t.Fatal("UI Root not spawned")
	}
	node, _ := cs.UINode.Get(root)
	if node.WidthPercent != 100 || node.HeightPercent != 10 || node.Padding != 10 || !node.CenterItems {
		t.Errorf("Unexpected root layout %+v", node)
	}
	if node.Background.A != 128 || node.Background.R != 0 {
		t.Errorf("Expected half transparent black, got %+v", node.Background)
	}

	texts := cs.UIText.All()
	if len(texts) != 1 {
		t.Fatalf("Expected one text node, got %d", len(texts))
	}
	text, _ := cs.UIText.Get(texts[0])
	if text.Text != "Money!" || text.FontSize != 32 {
		t.Errorf("Unexpected text %+v", text)
	}
	parent, ok := cs.Parent.Get(texts[0])
	if !ok || parent.Parent != root {
		t.Errorf("Text not parented to UI Root")
	}
}

func TestStartupRunsOnce(t *testing.T) {
	ctx, _, _ := newScene(t)
	ctx.Tick()
	count := ctx.World.EntityCount()
	ctx.Startup()
	ctx.Tick()
	if ctx.World.EntityCount() != count {
		t.Errorf("Startup ran twice: %d -> %d entities", count, ctx.World.EntityCount())
	}
	// camera + 3 static + ui root + text + 3 clouds
	if count != 9 {
		t.Errorf("Expected 9 entities, got %d", count)
	}
}
