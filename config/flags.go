package config

import (
	"flag"
)

// Flags holds the values bound by RegisterFlags
type Flags struct {
	ConfigPath string
	Backend    string
	AssetDir   string
	Debug      bool
	Mute       bool
	Volume     float64
}

// RegisterFlags binds command-line overrides on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "TOML configuration file")
	fs.StringVar(&f.Backend, "backend", BackendWindow, "Render backend: window, terminal")
	fs.StringVar(&f.AssetDir, "assets", "", "Load images from this directory and hot reload them")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging and Escape to quit")
	fs.BoolVar(&f.Mute, "mute", false, "Start with audio muted")
	fs.Float64Var(&f.Volume, "volume", 0, "Master volume 0.0-1.0")
	return f
}

// ApplyFlags overlays only the flags explicitly set on the command line
func (c *Config) ApplyFlags(fs *flag.FlagSet, f *Flags) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "backend":
			c.Backend = f.Backend
		case "assets":
			c.Assets.Dir = f.AssetDir
		case "debug":
			c.Debug = f.Debug
		case "mute":
			c.Audio.Muted = f.Mute
		case "volume":
			c.Audio.MasterVolume = f.Volume
		}
	})
}

// Resolve builds the configuration: defaults, then the file, then getenv, then set flags
func Resolve(fs *flag.FlagSet, f *Flags, getenv func(string) string) (Config, error) {
	cfg := Default()
	if f.ConfigPath != "" {
		if err := cfg.LoadFile(f.ConfigPath); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return cfg, err
	}
	cfg.ApplyFlags(fs, f)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
