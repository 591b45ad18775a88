package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/parameter"
	"github.com/lixenwraith/poly/service"
)

// SceneImages lists every image the scene references, preloaded on Init
var SceneImages = []string{
	parameter.ImageDoor,
	parameter.ImageShop,
	parameter.ImageGrass,
	parameter.ImageCloudL,
	parameter.ImageCloudM,
	parameter.ImageCloudS,
}

type entry struct {
	img     image.Image
	version uint64
	modTime time.Time
}

// Cache decodes images on first use and keeps them until reloaded
type Cache struct {
	mu      sync.RWMutex
	source  Source
	entries map[string]*entry
	preload []string
}

// NewCache creates a cache reading from source
// Images named in preload are decoded during Init
func NewCache(source Source, preload ...string) *Cache {
	return &Cache{
		source:  source,
		entries: make(map[string]*entry),
		preload: preload,
	}
}

// Source returns the cache's image source
func (c *Cache) Source() Source {
	return c.source
}

// Image returns the decoded image and its version, loading it on first request
func (c *Cache) Image(path string) (image.Image, uint64, error) {
	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()
	if ok {
		return e.img, e.version, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[path]; ok {
		return e.img, e.version, nil
	}
	e, err := c.load(path, 1)
	if err != nil {
		return nil, 0, err
	}
	c.entries[path] = e
	return e.img, e.version, nil
}

// Reload decodes the image again and bumps its version
// A failed decode keeps the previous image
func (c *Cache) Reload(path string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var next uint64 = 1
	if old, ok := c.entries[path]; ok {
		next = old.version + 1
	}
	e, err := c.load(path, next)
	if err != nil {
		return 0, err
	}
	c.entries[path] = e
	return e.version, nil
}

// ModTime returns the modification time recorded when the image was last loaded
func (c *Cache) ModTime(path string) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[path]
	if !ok {
		return time.Time{}, false
	}
	return e.modTime, true
}

// Paths returns the loaded image paths in sorted order
func (c *Cache) Paths() []string {
	c.mu.RLock()
	paths := make([]string, 0, len(c.entries))
	for p := range c.entries {
		paths = append(paths, p)
	}
	c.mu.RUnlock()

	slices.Sort(paths)
	return paths
}

func (c *Cache) load(path string, version uint64) (*entry, error) {
	f, err := c.source.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &entry{img: img, version: version, modTime: info.ModTime()}, nil
}

// --- Service ---

// Name implements service.Service
func (c *Cache) Name() string { return "assets" }

// Dependencies implements service.Service
func (c *Cache) Dependencies() []string { return nil }

// Init decodes the preload set, a missing image is a startup error
func (c *Cache) Init() error {
	for _, p := range c.preload {
		if _, _, err := c.Image(p); err != nil {
			return err
		}
	}
	if c.source.Dir != "" {
		log.Printf("assets: loaded %d images from %s", len(c.preload), c.source.Dir)
	} else {
		log.Printf("assets: loaded %d embedded images", len(c.preload))
	}
	return nil
}

// Start implements service.Service
func (c *Cache) Start() error { return nil }

// Stop implements service.Service
func (c *Cache) Stop() error { return nil }

// Contribute publishes the cache as the world's image source
func (c *Cache) Contribute(publish service.ResourcePublisher) {
	publish(&engine.AssetResource{Source: c})
}

// stat reports the current modification time of path in the source
func (c *Cache) stat(path string) (time.Time, error) {
	info, err := fs.Stat(c.source.FS, path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
