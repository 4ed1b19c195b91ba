// Package assets handles resource loading and caching.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/Faultbox/skinrender/internal/resources"
)

// ErrNotFound is returned when no source holds the requested path.
var ErrNotFound = errors.New("resource not found")

// Manager loads resources from a stack of file systems.
// Sources are searched in reverse order (last added = highest priority).
type Manager struct {
	sources []fs.FS
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates an empty resource manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// NewDefaultManager returns a manager over the bundled resources, with dir
// (if non-empty) layered on top so its files override the bundled ones.
func NewDefaultManager(dir string) (*Manager, error) {
	m := NewManager()
	m.AddSource(resources.FS)
	if dir != "" {
		if err := m.AddDir(dir); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddSource adds a file system to the manager.
func (m *Manager) AddSource(fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, fsys)
	m.mu.Unlock()
}

// AddDir adds a directory on disk as a source.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("opening resource dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("resource dir %s is not a directory", dir)
	}
	m.AddSource(os.DirFS(dir))
	return nil
}

// Load reads a resource by slash-separated path.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)

	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i], name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// LoadImage reads and decodes an image resource into a straight-alpha RGBA image.
func (m *Manager) LoadImage(name string) (*image.NRGBA, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// ToNRGBA returns img as an *image.NRGBA with its origin at (0, 0).
// An NRGBA input already anchored at the origin is returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Close drops all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sources = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded resources.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
