package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskCache persists pages as one JSON file per key
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a disk cache rooted at dir
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{dir: dir, ttl: ttl}
}

type diskEntry struct {
	Page      *Page     `json:"page"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get returns the page stored under key. Expired or unreadable entries are
// removed and reported as misses.
func (c *DiskCache) Get(key string) (*Page, bool) {
	file := c.file(key)
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Page == nil || time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(file)
		return nil, false
	}
	return entry.Page, true
}

func (c *DiskCache) Set(key string, page *Page, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	data, err := json.Marshal(diskEntry{Page: page, ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return fmt.Errorf("encode page: %w", err)
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.file(key), data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Delete removes the entry; a missing entry is not an error
func (c *DiskCache) Delete(key string) error {
	if err := os.Remove(c.file(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// file maps a key to its file; ':' is not portable in file names
func (c *DiskCache) file(key string) string {
	return filepath.Join(c.dir, strings.ReplaceAll(key, ":", "_")+".json")
}
