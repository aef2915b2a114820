package weather

import (
	"sync"
	"time"
)

// cacheEntry pairs a decoded snapshot with the moment it was fetched.
type cacheEntry struct {
	snapshot  WeatherSnapshot
	fetchedAt time.Time
}

// snapshotCache memoizes decoded forecast responses per coordinate key.
// Entries stay valid for the configured TTL; there is no eviction beyond
// the freshness check, a stale entry is simply overwritten by the next
// successful fetch for its key.
type snapshotCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time

	entries map[string]cacheEntry
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached snapshot for key if it is still fresh.
func (c *snapshotCache) get(key string) (WeatherSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.fetchedAt) >= c.ttl {
		return WeatherSnapshot{}, false
	}
	return entry.snapshot, true
}

// put stores or overwrites the entry for key.
func (c *snapshotCache) put(key string, snapshot WeatherSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{snapshot: snapshot, fetchedAt: c.now()}
}

// has reports whether any entry exists for key, fresh or stale.
func (c *snapshotCache) has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[key]
	return ok
}
