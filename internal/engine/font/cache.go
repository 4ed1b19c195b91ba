package font

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache holds loaded fonts for the lifetime of the process. Concurrent first
// requests for the same font share one load; failed loads are not cached so
// a later call retries.
type Cache struct {
	loader *Loader
	mu     sync.RWMutex
	fonts  map[string]*Font
	group  singleflight.Group
}

// NewCache creates an empty cache backed by loader.
func NewCache(loader *Loader) *Cache {
	return &Cache{
		loader: loader,
		fonts:  make(map[string]*Font),
	}
}

// Get returns the font with the given id, loading it on first use.
func (c *Cache) Get(id string) (*Font, error) {
	c.mu.RLock()
	f, ok := c.fonts[id]
	c.mu.RUnlock()
	if ok {
		return f, nil
	}

	v, err, _ := c.group.Do(id, func() (any, error) {
		c.mu.RLock()
		f, ok := c.fonts[id]
		c.mu.RUnlock()
		if ok {
			return f, nil
		}

		f, err := c.loader.Load(id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.fonts[id] = f
		c.mu.Unlock()
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Font), nil
}

// GetOrEmpty returns the font with the given id, or an empty font with
// default metrics when it cannot be loaded.
func (c *Cache) GetOrEmpty(id string) *Font {
	f, err := c.Get(id)
	if err != nil {
		c.loader.log.Warn("using fallback font", zap.String("font", id), zap.Error(err))
		return Empty(id)
	}
	return f
}

// Len returns the number of cached fonts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fonts)
}
