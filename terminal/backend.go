package terminal

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/render"
)

// Options configures the terminal backend
type Options struct {
	ClearColor color.RGBA
	Sampler    render.Sampler
	// Debug enables Escape to quit
	Debug bool
	// FrameInterval is the tick period, defaults to 60 ticks per second
	FrameInterval time.Duration
}

// Backend drives a GameContext from a tcell screen
type Backend struct {
	ctx      *engine.GameContext
	screen   tcell.Screen
	opts     Options
	renderer *Renderer
	builder  *render.Builder
}

// NewBackend wraps an initialized screen
func NewBackend(ctx *engine.GameContext, screen tcell.Screen, opts Options) *Backend {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = parameter.FrameUpdateInterval
	}
	b := &Backend{
		ctx:      ctx,
		screen:   screen,
		opts:     opts,
		renderer: NewRenderer(opts.ClearColor, opts.Sampler),
		builder:  render.NewBuilder(ctx.World, nil),
	}
	b.resize()
	return b
}

func (b *Backend) resize() {
	cols, rows := b.screen.Size()
	b.ctx.SetViewport(Viewport(cols, rows))
}

// HandleEvent applies one tcell event
func (b *Backend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if t, ok := keyEvent(ev, b.opts.Debug); ok {
			b.ctx.PushEvent(t, nil)
		}
	case *tcell.EventResize:
		b.resize()
		b.screen.Sync()
	}
}

// Frame ticks the world and draws it
func (b *Backend) Frame() {
	b.ctx.Tick()

	var frame render.Frame
	var images engine.ImageSource
	b.ctx.Snapshot(func() {
		frame = b.builder.Build()
		if assets, ok := engine.GetResource[*engine.AssetResource](b.ctx.World.Resources); ok {
			images = assets.Source
		}
	})
	b.renderer.Draw(b.screen, frame, images)
	b.screen.Show()
}

// Loop runs frames until a quit is requested
func (b *Backend) Loop() {
	ticker := time.NewTicker(b.opts.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		b.screen.ChannelEvents(eventChan, quit)
	})

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			b.HandleEvent(ev)

		case <-ticker.C:
			b.Frame()
			if b.ctx.QuitRequested() {
				return
			}
		}
	}
}

// Run opens the terminal screen and blocks until the user quits
func Run(ctx *engine.GameContext, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	log.Printf("terminal: %dx%d cells", cols, rows)

	NewBackend(ctx, screen, opts).Loop()
	return nil
}
