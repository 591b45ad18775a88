package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/lixenwraith/poly/asset"
	"github.com/lixenwraith/poly/audio"
	"github.com/lixenwraith/poly/config"
	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/event"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/render"
	"github.com/lixenwraith/poly/service"
	"github.com/lixenwraith/poly/status"
	"github.com/lixenwraith/poly/system"
	"github.com/lixenwraith/poly/terminal"
	"github.com/lixenwraith/poly/window"
)

func main() {
	// Panic recovery: the terminal backend registers a cleanup that restores the tty
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Resolve(flag.CommandLine, flags, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "poly: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	session := uuid.NewString()
	setSessionPrefix(session)
	log.Printf("session %s starting, backend=%s", session, cfg.Backend)

	if err := run(cfg, session); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "poly: %v\n", err)
		os.Exit(1)
	}
	log.Printf("session %s finished", session)
}

func run(cfg config.Config, session string) error {
	clearColor, err := resolveClearColor(cfg.Window.ClearColor)
	if err != nil {
		return err
	}

	ctx := engine.NewGameContext(engine.NewMonotonicTimeProvider())
	ctx.Status.Strings.Get(status.KeyBackend).Set(cfg.Backend)
	ctx.Status.Strings.Get(status.KeySession).Set(session)

	hub, err := newHub(cfg, ctx)
	if err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	hub.Contribute(ctx.Publish)

	ctx.AddPlugin(system.DefaultPlugins()...)

	switch cfg.Backend {
	case config.BackendTerminal:
		return terminal.Run(ctx, terminal.Options{
			ClearColor: clearColor,
			Sampler:    render.PixelArt,
			Debug:      cfg.Debug,
		})
	default:
		w, h := cfg.WindowSize()
		x, y := cfg.WindowPosition()
		return window.Run(ctx, window.Options{
			Title:      cfg.Window.Title,
			Width:      w,
			Height:     h,
			X:          x,
			Y:          y,
			Resizable:  cfg.Window.Resizable,
			ClearColor: clearColor,
			Sampler:    render.PixelArt,
			Debug:      cfg.Debug,
		})
	}
}

// resolveClearColor panics on a malformed built-in color and returns an error for a configured one
func resolveClearColor(hex string) (color.RGBA, error) {
	if hex == parameter.ClearColorHex {
		return core.MustParseHex(parameter.ClearColorHex), nil
	}
	c, err := core.ParseHex(hex)
	if err != nil {
		return c, fmt.Errorf("clear color: %w", err)
	}
	return c, nil
}

// newHub registers the long-lived services
func newHub(cfg config.Config, ctx *engine.GameContext) (*service.Hub, error) {
	cache := asset.NewCache(asset.NewSource(cfg.Assets.Dir), asset.SceneImages...)
	watcher := asset.NewWatcher(cache, cfg.Assets.WatchDelay.Duration, func(path string, version uint64) {
		ctx.PushEvent(event.EventAssetReloaded, &event.AssetReloadedPayload{Path: path, Version: version})
	})
	player := audio.NewService(audio.Config{
		Enabled:      cfg.Audio.Enabled,
		Muted:        cfg.Audio.Muted,
		MasterVolume: cfg.Audio.MasterVolume,
		SampleRate:   cfg.Audio.SampleRate,
		BufferPeriod: parameter.AudioBufferPeriod,
	})

	hub := service.NewHub()
	for _, svc := range []service.Service{cache, watcher, player} {
		if err := hub.Register(svc); err != nil {
			return nil, err
		}
	}
	return hub, nil
}
