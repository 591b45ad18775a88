package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poly.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultWindowGeometry(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	w, h := cfg.WindowSize()
	if w != 1280 || h != 720 {
		t.Errorf("Expected 1280x720 window, got %dx%d", w, h)
	}
	x, y := cfg.WindowPosition()
	if x != 640 || y != 144 {
		t.Errorf("Expected position (640, 144), got (%d, %d)", x, y)
	}
	if cfg.Window.Title != "Poly" || cfg.Window.Resizable {
		t.Errorf("Unexpected window defaults %+v", cfg.Window)
	}
	if cfg.Assets.WatchDelay.Duration != time.Second {
		t.Errorf("Expected 1s watch delay, got %v", cfg.Assets.WatchDelay)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
backend = "terminal"

[window]
divisor = 4
clear_color = "#102030"

[audio]
master_volume = 0.8

[assets]
dir = "./art"
watch_delay = "250ms"
`)
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatal(err)
	}

	if cfg.Backend != BackendTerminal || cfg.Window.Divisor != 4 || cfg.Window.ClearColor != "#102030" {
		t.Errorf("File values not applied: %+v", cfg)
	}
	if cfg.Window.MonitorWidth != 2560 {
		t.Error("Unset keys must keep defaults")
	}
	if cfg.Audio.MasterVolume != 0.8 || cfg.Assets.Dir != "./art" || cfg.Assets.WatchDelay.Duration != 250*time.Millisecond {
		t.Errorf("Nested values not applied: %+v %+v", cfg.Audio, cfg.Assets)
	}
	if w, h := cfg.WindowSize(); w != 640 || h != 360 {
		t.Errorf("Expected 640x360, got %dx%d", w, h)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[window]\ntitel = \"typo\"\n")
	cfg := Default()
	err := cfg.LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "titel") {
		t.Errorf("Expected unknown key error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(env(map[string]string{
		EnvBackend:      "terminal",
		EnvAudioEnabled: "false",
		EnvMasterVolume: "150",
		EnvAssetDir:     "/tmp/art",
		EnvDebug:        "1",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "terminal" || cfg.Audio.Enabled || !cfg.Debug || cfg.Assets.Dir != "/tmp/art" {
		t.Errorf("Env not applied: %+v", cfg)
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.MasterVolume)
	}

	if err := cfg.ApplyEnv(env(map[string]string{EnvDebug: "maybe"})); err == nil {
		t.Error("Expected parse error for bad bool")
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := writeConfig(t, "backend = \"terminal\"\n[audio]\nmaster_volume = 0.2\n")

	fs := flag.NewFlagSet("poly", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-volume", "0.9"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(fs, flags, env(map[string]string{EnvMasterVolume: "50", EnvDebug: "true"}))
	if err != nil {
		t.Fatal(err)
	}
	// File sets backend, env sets debug and is overridden by the volume flag
	if cfg.Backend != BackendTerminal {
		t.Errorf("Unset -backend flag must not override the file, got %s", cfg.Backend)
	}
	if !cfg.Debug {
		t.Error("Expected debug from env")
	}
	if cfg.Audio.MasterVolume != 0.9 {
		t.Errorf("Expected flag volume 0.9, got %v", cfg.Audio.MasterVolume)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown backend", func(c *Config) { c.Backend = "vulkan" }, "backend"},
		{"zero divisor", func(c *Config) { c.Window.Divisor = 0 }, "divisor"},
		{"negative monitor", func(c *Config) { c.Window.MonitorWidth = -1 }, "monitor size"},
		{"divisor larger than monitor", func(c *Config) { c.Window.Divisor = 5000 }, "window size"},
		{"bad color", func(c *Config) { c.Window.ClearColor = "zzzzzz" }, "clear_color"},
		{"loud volume", func(c *Config) { c.Audio.MasterVolume = 1.5 }, "master_volume"},
		{"no sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "sample_rate"},
		{"negative delay", func(c *Config) { c.Assets.WatchDelay.Duration = -time.Second }, "watch_delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
