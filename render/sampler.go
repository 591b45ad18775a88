package render

import "golang.org/x/image/draw"

// FilterMode selects texel interpolation
type FilterMode uint8

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// AddressMode selects how texture coordinates outside [0,1] resolve
type AddressMode uint8

const (
	AddressClampToEdge AddressMode = iota
	AddressRepeat
)

// Sampler is the image sampling configuration shared by both backends
type Sampler struct {
	Filter      FilterMode
	AddressU    AddressMode
	AddressV    AddressMode
	AddressW    AddressMode
	MSAASamples int
}

// PixelArt keeps texels crisp: nearest filtering, repeat addressing, no multisampling
// Sprites never sample outside their bounds, so the address mode has no visible effect
var PixelArt = Sampler{
	Filter:      FilterNearest,
	AddressU:    AddressRepeat,
	AddressV:    AddressRepeat,
	AddressW:    AddressRepeat,
	MSAASamples: 1,
}

// Interpolator returns the software scaler matching the filter
func (s Sampler) Interpolator() draw.Interpolator {
	if s.Filter == FilterLinear {
		return draw.ApproxBiLinear
	}
	return draw.NearestNeighbor
}
