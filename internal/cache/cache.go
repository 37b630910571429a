// Package cache keeps fetched source pages between runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Page is a cached fetch of a source URL
type Page struct {
	URL       string    `json:"url"`       // requested URL
	FinalURL  string    `json:"final_url"` // after redirects
	Body      []byte    `json:"body"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Cache stores fetched pages keyed by PageKey. A ttl of zero means the
// store's default.
type Cache interface {
	Get(key string) (*Page, bool)
	Set(key string, page *Page, ttl time.Duration) error
	Delete(key string) error
}

// PageKey derives the cache key for a source URL
func PageKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "citypop:page:v1:" + hex.EncodeToString(sum[:])
}
