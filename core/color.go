package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses "rrggbb" or "rrggbbaa", with or without a leading '#'
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")

	var c color.RGBA
	switch len(s) {
	case 6, 8:
	default:
		return c, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(s) == 6 {
		c.R = uint8(v >> 16)
		c.G = uint8(v >> 8)
		c.B = uint8(v)
		c.A = 0xff
	} else {
		c.R = uint8(v >> 24)
		c.G = uint8(v >> 16)
		c.B = uint8(v >> 8)
		c.A = uint8(v)
	}
	return c, nil
}

// MustParseHex is ParseHex for compile-time constants, panics on malformed input
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBAf builds a color from normalized float channels, clamped to [0, 1]
// Channels are premultiplied as image/color expects
func RGBAf(r, g, b, a float64) color.RGBA {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	a = clamp(a)
	return color.RGBA{
		R: uint8(clamp(r)*a*255 + 0.5),
		G: uint8(clamp(g)*a*255 + 0.5),
		B: uint8(clamp(b)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
