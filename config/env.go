package config

import (
	"fmt"
	"strconv"
)

// Environment variable names
const (
	EnvBackend      = "POLY_BACKEND"
	EnvAudioEnabled = "POLY_AUDIO_ENABLED"
	EnvMasterVolume = "POLY_MASTER_VOLUME"
	EnvAssetDir     = "POLY_ASSET_DIR"
	EnvDebug        = "POLY_DEBUG"
)

// ApplyEnv overlays environment variables read through getenv
// POLY_MASTER_VOLUME is a percentage 0-100
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := getenv(EnvAssetDir); v != "" {
		c.Assets.Dir = v
	}
	if v := getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}
	if v := getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v := getenv(EnvMasterVolume); v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = min(max(float64(pct)/100, 0), 1)
	}
	return nil
}
