package images

import (
	"sort"
	"sync"
)

// Catalog maps image keys to their processed metadata. Image workers write
// it; page assembly only reads.
type Catalog struct {
	mu     sync.RWMutex
	images map[string]*ProcessedImage
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{images: make(map[string]*ProcessedImage)}
}

// Put stores img under key, replacing any previous entry.
func (c *Catalog) Put(key string, img *ProcessedImage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[key] = img
}

// Get looks up key.
func (c *Catalog) Get(key string) (*ProcessedImage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[key]
	return img, ok
}

// Len returns the number of images.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// keys returns all keys in sorted order.
func (c *Catalog) keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.images))
	for k := range c.images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
