package counting

import (
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/randalmurphal/tokenmaster/model"
)

// DefaultCacheSize is the number of remote counts kept when caching is on.
const DefaultCacheSize = 512

type cacheKey struct {
	model model.ID
	sum   [sha256.Size]byte
}

// Cache holds authoritative counts keyed by model and text digest.
// It is safe for concurrent use.
type Cache struct {
	lru *lru.Cache[cacheKey, int]
}

// NewCache creates a cache holding up to size entries.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[cacheKey, int](size)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

func keyFor(id model.ID, text string) cacheKey {
	return cacheKey{model: id, sum: sha256.Sum256([]byte(text))}
}

// Get returns the cached count for (id, text).
func (c *Cache) Get(id model.ID, text string) (int, bool) {
	if c == nil {
		return 0, false
	}
	return c.lru.Get(keyFor(id, text))
}

// Add stores a count. It reports whether an older entry was evicted.
func (c *Cache) Add(id model.ID, text string, tokens int) bool {
	if c == nil {
		return false
	}
	return c.lru.Add(keyFor(id, text), tokens)
}

// Len returns the number of cached counts.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	if c != nil {
		c.lru.Purge()
	}
}
