package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/lixenwraith/poly/component"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/system"
)

// solidImages serves fixed-size single-color images
type solidImages struct {
	sizes  map[string]image.Point
	colors map[string]color.RGBA
}

func (s *solidImages) Image(path string) (image.Image, uint64, error) {
	size, ok := s.sizes[path]
	if !ok {
		return nil, 0, fmt.Errorf("unknown image %s", path)
	}
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	c := s.colors[path]
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img, 1, nil
}

func sceneImages() *solidImages {
	scene := image.Pt(160, 90)
	return &solidImages{
		sizes: map[string]image.Point{
			parameter.ImageDoor:   image.Pt(12, 20),
			parameter.ImageShop:   scene,
			parameter.ImageGrass:  scene,
			parameter.ImageCloudL: scene,
			parameter.ImageCloudM: scene,
			parameter.ImageCloudS: scene,
		},
		colors: map[string]color.RGBA{
			parameter.ImageDoor: {255, 0, 0, 255},
		},
	}
}

func newScene(t *testing.T, viewW, viewH int) (*engine.GameContext, *solidImages) {
	t.Helper()
	ctx, _ := engine.NewTestGameContext()
	ctx.SetViewport(viewW, viewH)
	images := sceneImages()
	ctx.Publish(&engine.AssetResource{Source: images})
	ctx.AddPlugin(system.DefaultPlugins()...)
	ctx.Tick()
	return ctx, images
}

func buildFrame(ctx *engine.GameContext) Frame {
	var f Frame
	ctx.Snapshot(func() {
		f = NewBuilder(ctx.World, nil).Build()
	})
	return f
}

func TestProjectionAutoMin(t *testing.T) {
	p := NewProjection(component.CameraComponent{MinWidth: 160, MinHeight: 90}, component.TransformComponent{}, 1280, 720)
	if p.Scale != 8 {
		t.Fatalf("Expected scale 8, got %v", p.Scale)
	}

	x, y := p.ToScreen(0, 0)
	if x != 640 || y != 360 {
		t.Errorf("Origin should map to viewport center, got (%v, %v)", x, y)
	}
	_, y = p.ToScreen(0, 10)
	if y != 280 {
		t.Errorf("+Y should point up, got y=%v", y)
	}

	r := p.SpriteRect(0, 0, 160, 90)
	if r != (Rect{X: 0, Y: 0, W: 1280, H: 720}) {
		t.Errorf("Scene sprite should fill the window, got %+v", r)
	}
}

func TestBuildSpritesSortedAndProjected(t *testing.T) {
	ctx, _ := newScene(t, 1280, 720)
	f := buildFrame(ctx)

	if f.Scale != 8 {
		t.Fatalf("Expected scale 8, got %v", f.Scale)
	}
	if len(f.Sprites) != 6 {
		t.Fatalf("Expected 6 sprites, got %d", len(f.Sprites))
	}

	// WORLD layer first (grass, then clouds in spawn order), then shop, door on top
	want := []string{
		parameter.ImageGrass,
		parameter.ImageCloudL, parameter.ImageCloudS, parameter.ImageCloudM,
		parameter.ImageShop,
		parameter.ImageDoor,
	}
	for i, s := range f.Sprites {
		if s.Image != want[i] {
			t.Errorf("Sprite %d: expected %s, got %s", i, want[i], s.Image)
		}
		if i > 0 && s.Z < f.Sprites[i-1].Z {
			t.Errorf("Sprite %d out of z order", i)
		}
	}

	door := f.Sprites[5].Dst
	if door != (Rect{X: 592, Y: 280, W: 96, H: 160}) {
		t.Errorf("Door should keep native size scaled by 8, got %+v", door)
	}
	cloudS := f.Sprites[2].Dst
	if cloudS.X != 480 || cloudS.W != 1280 {
		t.Errorf("Cloud at x=60 should start at 480px, got %+v", cloudS)
	}
}

func TestBuildWithoutCameraDrawsNoSprites(t *testing.T) {
	ctx, _ := engine.NewTestGameContext()
	ctx.AddPlugin(system.WorldPlugin)
	ctx.Tick()

	f := buildFrame(ctx)
	if len(f.Sprites) != 0 || f.Scale != 0 {
		t.Errorf("Expected nothing drawn without camera, got %d sprites", len(f.Sprites))
	}
}

func TestHUDLayout(t *testing.T) {
	ctx, _ := newScene(t, 1280, 720)
	f := buildFrame(ctx)

	if len(f.HUD) != 1 {
		t.Fatalf("Expected one HUD root, got %d", len(f.HUD))
	}
	hud := f.HUD[0]
	if hud.Panel != (Rect{W: 1280, H: 72}) {
		t.Errorf("Expected 1280x72 panel, got %+v", hud.Panel)
	}
	if hud.Content != (Rect{X: 10, Y: 10, W: 1260, H: 52}) {
		t.Errorf("Expected padded content box, got %+v", hud.Content)
	}
	if len(hud.Texts) != 1 {
		t.Fatalf("Expected one text, got %d", len(hud.Texts))
	}
	text := hud.Texts[0]
	if text.Text != "Money!" || text.X != 10 || text.Y != 20 {
		t.Errorf("Expected vertically centered text at (10, 20), got %+v", text)
	}
}

func TestLayoutNodePaddingLargerThanPanel(t *testing.T) {
	node := component.UINodeComponent{WidthPercent: 100, HeightPercent: 10, Padding: 10, CenterItems: true}
	l := LayoutNode(100, 90, node, []component.UITextComponent{{Text: "x", FontSize: 32}}, nil)
	if l.Content.H != 0 {
		t.Errorf("Content height must clamp at zero, got %v", l.Content.H)
	}
}

func TestInspectorFollowsToggle(t *testing.T) {
	ctx, _ := newScene(t, 1280, 720)
	if f := buildFrame(ctx); f.Inspector != nil {
		t.Fatal("Inspector must start hidden")
	}

	ctx.PushEvent(event.EventInspectorToggle, nil)
	ctx.Tick()
	f := buildFrame(ctx)
	if len(f.Inspector) == 0 {
		t.Fatal("Expected inspector lines")
	}
	text := strings.Join(f.Inspector, "\n")
	for _, want := range []string{"9 entities", `"Camera"`, `"UI Root"`, "Cloud", "world.clouds: 3"} {
		if !strings.Contains(text, want) {
			t.Errorf("Inspector missing %q:\n%s", want, text)
		}
	}
}

func TestRasterizeSmallViewport(t *testing.T) {
	ctx, images := newScene(t, 160, 90)
	f := buildFrame(ctx)

	clear := color.RGBA{0x5f, 0xcd, 0xe4, 0xff}
	dst := image.NewRGBA(image.Rect(0, 0, 160, 90))
	Rasterize(dst, f, images, clear, PixelArt)

	// Door spans x 74..86, y 35..55
	if got := dst.RGBAAt(80, 45); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected door pixel, got %v", got)
	}
	// Transparent sprites leave the sky
	if got := dst.RGBAAt(5, 80); got != clear {
		t.Errorf("Expected clear color, got %v", got)
	}
	// HUD panel (9px tall) darkens the sky
	got := dst.RGBAAt(5, 3)
	if got.R >= clear.R || got.R == 0 || got.A != 255 {
		t.Errorf("Expected half-darkened sky under HUD, got %v", got)
	}
}
