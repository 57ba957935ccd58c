package duckduckgo

import (
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const maxCacheEntries = 512

type cacheEntry struct {
	phrases []string
	expires time.Time
}

// phraseCache keeps responses per query for a fixed time.
type phraseCache struct {
	clock   clockwork.Clock
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func newPhraseCache(clock clockwork.Clock, ttl time.Duration) *phraseCache {
	return &phraseCache{
		clock:   clock,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *phraseCache) get(query string) ([]string, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	if !c.clock.Now().Before(entry.expires) {
		delete(c.entries, query)
		return nil, false
	}
	return slices.Clone(entry.phrases), true
}

func (c *phraseCache) put(query string, phrases []string) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if len(c.entries) >= maxCacheEntries {
		c.evictLocked(now)
	}
	c.entries[query] = cacheEntry{
		phrases: slices.Clone(phrases),
		expires: now.Add(c.ttl),
	}
}

// evictLocked drops expired entries, or everything when none has expired.
func (c *phraseCache) evictLocked(now time.Time) {
	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= maxCacheEntries {
		clear(c.entries)
	}
}

func (c *phraseCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
