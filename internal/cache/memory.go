package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds pages for the lifetime of the process
type MemoryCache struct {
	pages *gocache.Cache
}

// NewMemoryCache creates a memory cache; expired pages are purged every cleanupInterval
func NewMemoryCache(ttl, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{pages: gocache.New(ttl, cleanupInterval)}
}

func (c *MemoryCache) Get(key string) (*Page, bool) {
	v, found := c.pages.Get(key)
	if !found {
		return nil, false
	}
	page, ok := v.(*Page)
	return page, ok
}

func (c *MemoryCache) Set(key string, page *Page, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.pages.Set(key, page, ttl)
	return nil
}

func (c *MemoryCache) Delete(key string) error {
	c.pages.Delete(key)
	return nil
}
