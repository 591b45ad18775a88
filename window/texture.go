package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/poly/engine"
)

type texture struct {
	img     *ebiten.Image
	version uint64
}

// textureCache uploads decoded images to the GPU once per asset version
type textureCache struct {
	entries map[string]texture
}

func newTextureCache() *textureCache {
	return &textureCache{entries: make(map[string]texture)}
}

// get returns the GPU image for path, re-uploading when the asset was reloaded
func (c *textureCache) get(images engine.ImageSource, path string) (*ebiten.Image, bool) {
	src, version, err := images.Image(path)
	if err != nil {
		return nil, false
	}
	if t, ok := c.entries[path]; ok {
		if t.version == version {
			return t.img, true
		}
		t.img.Deallocate()
	}
	img := ebiten.NewImageFromImage(src)
	c.entries[path] = texture{img: img, version: version}
	return img, true
}
