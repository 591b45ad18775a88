package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/poly/engine"
)

// Rasterize composites a frame into dst, scaling sprites with the sampler's filter
// Text is left to the backend, only the HUD panel is filled
func Rasterize(dst *image.RGBA, f Frame, images engine.ImageSource, clear color.RGBA, sampler Sampler) {
	scaler := sampler.Interpolator()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(clear), image.Point{}, draw.Src)

	if images != nil {
		for _, s := range f.Sprites {
			src, _, err := images.Image(s.Image)
			if err != nil {
				continue
			}
			r := toPixels(s.Dst)
			if r.Empty() || !r.Overlaps(dst.Bounds()) {
				continue
			}
			scaler.Scale(dst, r, src, src.Bounds(), draw.Over, nil)
		}
	}

	for _, hud := range f.HUD {
		r := toPixels(hud.Panel).Intersect(dst.Bounds())
		if r.Empty() || hud.Background.A == 0 {
			continue
		}
		draw.Draw(dst, r, image.NewUniform(hud.Background), image.Point{}, draw.Over)
	}
}

// toPixels snaps a float rect to the pixel grid
func toPixels(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Floor(r.X+r.W)),
		int(math.Floor(r.Y+r.H)),
	)
}
