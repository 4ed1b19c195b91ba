package model

import (
	"sync"

	"github.com/Faultbox/skinrender/internal/logger"
	"go.uber.org/zap"
)

// Cache memoises face lists by variant. Entries live for the lifetime of the
// cache; callers must treat returned slices as read-only.
type Cache struct {
	mu    sync.Mutex
	faces map[Key][]Face
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{faces: make(map[Key][]Face)}
}

var defaultCache = NewCache()

// Faces returns the faces for k from the process-wide cache.
func Faces(k Key) []Face {
	return defaultCache.Get(k)
}

// Get returns the faces for k, building them on first use.
func (c *Cache) Get(k Key) []Face {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.faces[k]; ok {
		return f
	}
	f := Build(k)
	c.faces[k] = f
	logger.Debug("built model faces",
		zap.Bool("slim", k.Slim),
		zap.Bool("overlay", k.Overlay),
		zap.Bool("head_only", k.HeadOnly),
		zap.Int("faces", len(f)))
	return f
}

// Len returns the number of cached variants.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.faces)
}
