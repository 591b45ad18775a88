package window

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/render"
	"github.com/lixenwraith/poly/status"
)

// Game adapts a GameContext to ebiten.Game
type Game struct {
	ctx      *engine.GameContext
	opts     Options
	builder  *render.Builder
	textures *textureCache

	fontSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace

	statFPS *status.AtomicFloat
	statTPS *status.AtomicFloat
}

// NewGame creates the ebiten adapter
func NewGame(ctx *engine.GameContext, opts Options) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load HUD font: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		opts:       opts,
		textures:   newTextureCache(),
		fontSource: src,
		faces:      make(map[float64]*text.GoTextFace),
		statFPS:    ctx.Status.Floats.Get(status.KeyFPS),
		statTPS:    ctx.Status.Floats.Get(status.KeyTPS),
	}
	g.builder = render.NewBuilder(ctx.World, g.measure)
	return g, nil
}

func (g *Game) face(size float64) *text.GoTextFace {
	f, ok := g.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: g.fontSource, Size: size}
		g.faces[size] = f
	}
	return f
}

func (g *Game) measure(s string, size float64) (float64, float64) {
	return text.Measure(s, g.face(size), 0)
}

// Update translates input into events and advances the world one tick
func (g *Game) Update() error {
	for _, ev := range pressedEvents(inpututil.IsKeyJustPressed, g.opts.Debug) {
		g.ctx.PushEvent(ev, nil)
	}
	if ebiten.IsWindowBeingClosed() {
		g.ctx.PushEvent(event.EventQuitRequest, nil)
	}

	g.ctx.Tick()
	g.statTPS.Set(ebiten.ActualTPS())

	if g.ctx.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest world snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	var frame render.Frame
	var images engine.ImageSource
	g.ctx.Snapshot(func() {
		frame = g.builder.Build()
		if assets, ok := engine.GetResource[*engine.AssetResource](g.ctx.World.Resources); ok {
			images = assets.Source
		}
	})

	screen.Fill(g.opts.ClearColor)
	if images != nil {
		g.drawSprites(screen, frame, images)
	}
	g.drawHUD(screen, frame)

	if frame.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", frame.ViewWidth/2-18, frame.ViewHeight/2)
	}
	if frame.Inspector != nil {
		y := 4
		if len(frame.HUD) > 0 {
			y = int(frame.HUD[0].Panel.H) + 4
		}
		ebitenutil.DebugPrintAt(screen, strings.Join(frame.Inspector, "\n"), 4, y)
	}
	g.statFPS.Set(ebiten.ActualFPS())
}

func (g *Game) drawSprites(screen *ebiten.Image, frame render.Frame, images engine.ImageSource) {
	filter := ebiten.FilterNearest
	if g.opts.Sampler.Filter == render.FilterLinear {
		filter = ebiten.FilterLinear
	}

	for _, s := range frame.Sprites {
		img, ok := g.textures.get(images, s.Image)
		if !ok {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{Filter: filter}
		op.GeoM.Scale(s.Dst.W/float64(b.Dx()), s.Dst.H/float64(b.Dy()))
		op.GeoM.Translate(s.Dst.X, s.Dst.Y)
		screen.DrawImage(img, op)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, frame render.Frame) {
	for _, hud := range frame.HUD {
		p := hud.Panel
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), hud.Background, false)
		for _, t := range hud.Texts {
			op := &text.DrawOptions{}
			op.GeoM.Translate(t.X, t.Y)
			op.ColorScale.ScaleWithColor(t.Color)
			text.Draw(screen, t.Text, g.face(t.Size), op)
		}
	}
}

// Layout keeps the logical screen equal to the window and records it as the viewport
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctx.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed
func Run(ctx *engine.GameContext, opts Options) error {
	g, err := NewGame(ctx, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowPosition(opts.X, opts.Y)
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(parameter.TicksPerSecond)

	log.Printf("window: %dx%d at (%d, %d)", opts.Width, opts.Height, opts.X, opts.Y)
	err = ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		InitUnfocused: false,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
