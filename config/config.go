// Package config resolves runtime settings from defaults, a TOML file, the environment and flags
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/poly/core"
	"github.com/lixenwraith/poly/parameter"
)

// Backend names
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Duration decodes TOML strings such as "1s" or "500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the complete runtime configuration
type Config struct {
	Backend string       `toml:"backend"`
	Debug   bool         `toml:"debug"`
	Window  WindowConfig `toml:"window"`
	Audio   AudioConfig  `toml:"audio"`
	Assets  AssetConfig  `toml:"assets"`
}

// WindowConfig sizes the desktop window from a reference monitor
type WindowConfig struct {
	Title         string `toml:"title"`
	MonitorWidth  int    `toml:"monitor_width"`
	MonitorHeight int    `toml:"monitor_height"`
	Divisor       int    `toml:"divisor"`
	Resizable     bool   `toml:"resizable"`
	ClearColor    string `toml:"clear_color"`
}

// AudioConfig controls the ambient loop
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	Muted        bool    `toml:"muted"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// AssetConfig selects the image source
type AssetConfig struct {
	// Dir overrides the embedded images and enables hot reload when set
	Dir        string   `toml:"dir"`
	WatchDelay Duration `toml:"watch_delay"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Backend: BackendWindow,
		Window: WindowConfig{
			Title:         parameter.WindowTitle,
			MonitorWidth:  parameter.MonitorWidth,
			MonitorHeight: parameter.MonitorHeight,
			Divisor:       parameter.WindowDivisor,
			ClearColor:    parameter.ClearColorHex,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		Assets: AssetConfig{
			WatchDelay: Duration{parameter.AssetWatchDelay},
		},
	}
}

// LoadFile overlays a TOML file on c, unknown keys are an error
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// WindowSize returns the window size in pixels
func (c Config) WindowSize() (int, int) {
	return c.Window.MonitorWidth / c.Window.Divisor, c.Window.MonitorHeight / c.Window.Divisor
}

// WindowPosition places the window horizontally a quarter in and a tenth down the monitor
func (c Config) WindowPosition() (int, int) {
	return c.Window.MonitorWidth / c.Window.Divisor / 2, c.Window.MonitorHeight / 10
}

// Validate reports every invalid setting
func (c Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		errs = append(errs, fmt.Errorf("backend %q: want %s or %s", c.Backend, BackendWindow, BackendTerminal))
	}

	if c.Window.MonitorWidth <= 0 || c.Window.MonitorHeight <= 0 {
		errs = append(errs, fmt.Errorf("window monitor size %dx%d must be positive", c.Window.MonitorWidth, c.Window.MonitorHeight))
	}
	if c.Window.Divisor <= 0 {
		errs = append(errs, fmt.Errorf("window divisor %d must be positive", c.Window.Divisor))
	} else if w, h := c.WindowSize(); w <= 0 || h <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", w, h))
	}
	if _, err := core.ParseHex(c.Window.ClearColor); err != nil {
		errs = append(errs, fmt.Errorf("window clear_color: %w", err))
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio master_volume %v out of range [0, 1]", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sample_rate %d must be positive", c.Audio.SampleRate))
	}

	if c.Assets.WatchDelay.Duration < 0 {
		errs = append(errs, fmt.Errorf("assets watch_delay %v must not be negative", c.Assets.WatchDelay.Duration))
	}

	return errors.Join(errs...)
}
