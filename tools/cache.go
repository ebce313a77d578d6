// Tool result cache - TTL memoization for identical tool invocations.
//
// Information Hiding:
// - Key canonicalization hidden behind Key
// - Expiry strategy (lazy on read plus periodic sweep) hidden

package tools

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Cache memoizes successful tool results by canonical invocation key.
// Failures are never stored. Safe for concurrent use by many in-flight
// conversations. An expired entry is never returned as a hit: reads check
// expiry, and a background sweep reclaims memory between reads.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewCache creates a cache with the given TTL and sweep interval. A zero
// sweep interval disables the background sweep; expiry on read still holds.
func NewCache(ttl, sweepEvery time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	if sweepEvery > 0 {
		go c.sweep(sweepEvery)
	}
	return c
}

// Key derives the canonical cache key for a tool invocation. The argument
// object is round-tripped through a map so keys serialize in sorted order:
// semantically identical calls collide regardless of argument ordering.
func Key(tool string, args json.RawMessage) (string, error) {
	canonical := "{}"
	if len(args) > 0 {
		var params map[string]any
		if err := json.Unmarshal(args, &params); err != nil {
			return "", fmt.Errorf("cache key: arguments are not an object: %w", err)
		}
		sorted, err := json.Marshal(params)
		if err != nil {
			return "", fmt.Errorf("cache key: %w", err)
		}
		canonical = string(sorted)
	}
	return tool + ":" + canonical, nil
}

// Get returns the cached value for key and whether it was a live hit.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Set stores a value with the configured TTL, overwriting any existing entry
// for the key.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the background sweep. Idempotent.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Cache) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for key, entry := range c.entries {
				if now.After(entry.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
