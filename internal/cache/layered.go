package cache

import "time"

// LayeredCache consults memory before disk and keeps both in step
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a memory layer over a disk layer rooted at dir
func NewLayeredCache(memoryTTL time.Duration, dir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(dir, diskTTL),
	}
}

// Get returns the page from the first layer holding it; disk hits are
// copied into memory
func (c *LayeredCache) Get(key string) (*Page, bool) {
	if page, found := c.memory.Get(key); found {
		return page, true
	}
	page, found := c.disk.Get(key)
	if !found {
		return nil, false
	}
	_ = c.memory.Set(key, page, 0)
	return page, true
}

// Set writes the page to both layers
func (c *LayeredCache) Set(key string, page *Page, ttl time.Duration) error {
	if err := c.memory.Set(key, page, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, page, ttl)
}

// Delete removes the page from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}
