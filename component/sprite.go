package component

// SpriteComponent draws an image centered on the entity's transform
type SpriteComponent struct {
	// Image is the asset path, resolved through the asset cache at draw time
	Image string

	// CustomSize overrides the image's native size when non-nil
	CustomSize *Size
}

// WithSize returns a sprite of the given image stretched to w x h world units
func WithSize(image string, w, h float64) SpriteComponent {
	return SpriteComponent{Image: image, CustomSize: &Size{W: w, H: h}}
}
