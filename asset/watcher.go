package asset

import (
	"log"
	"sync"
	"time"
)

// ReloadFunc is called after an image was reloaded from disk
type ReloadFunc func(path string, version uint64)

// Watcher polls the cache's directory for changed images and reloads them
// Polling keeps the watcher portable and the scene only has a handful of files
type Watcher struct {
	cache    *Cache
	delay    time.Duration
	onReload ReloadFunc

	enabled bool
	stop    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWatcher creates a watcher checking every delay
func NewWatcher(cache *Cache, delay time.Duration, onReload ReloadFunc) *Watcher {
	return &Watcher{
		cache:    cache,
		delay:    delay,
		onReload: onReload,
		stop:     make(chan struct{}),
	}
}

// Name implements service.Service
func (w *Watcher) Name() string { return "asset-watcher" }

// Dependencies implements service.Service
func (w *Watcher) Dependencies() []string { return []string{"assets"} }

// Init enables the watcher only for directory sources
func (w *Watcher) Init() error {
	w.enabled = w.cache.Source().Watchable() && w.delay > 0
	if !w.enabled {
		log.Printf("asset-watcher: disabled (embedded assets)")
	}
	return nil
}

// Start launches the polling goroutine
func (w *Watcher) Start() error {
	if !w.enabled {
		return nil
	}
	w.wg.Add(1)
	go w.run()
	return nil
}

// Stop halts polling and waits for the goroutine to exit
func (w *Watcher) Stop() error {
	w.once.Do(func() {
		close(w.stop)
	})
	w.wg.Wait()
	return nil
}

// Enabled reports whether Init found a watchable source
func (w *Watcher) Enabled() bool {
	return w.enabled
}

func (w *Watcher) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.delay)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}

// Poll reloads every cached image whose modification time changed
// Returns the paths that were reloaded
func (w *Watcher) Poll() []string {
	var reloaded []string
	for _, path := range w.cache.Paths() {
		known, ok := w.cache.ModTime(path)
		if !ok {
			continue
		}
		current, err := w.cache.stat(path)
		if err != nil {
			log.Printf("asset-watcher: stat %s: %v", path, err)
			continue
		}
		if current.Equal(known) {
			continue
		}

		version, err := w.cache.Reload(path)
		if err != nil {
			// A half-written file fails to decode, the next poll retries
			log.Printf("asset-watcher: reload %s: %v", path, err)
			continue
		}
		log.Printf("asset-watcher: reloaded %s (v%d)", path, version)
		reloaded = append(reloaded, path)
		if w.onReload != nil {
			w.onReload(path, version)
		}
	}
	return reloaded
}
