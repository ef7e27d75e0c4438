package convert

import (
	"container/list"
	"sync"

	"github.com/beetlebugorg/wkt2geojson/pkg/wkt"
)

// GeometryCache holds parsed geometries keyed by their literal text with an
// LRU eviction policy.
//
// Input files often repeat the same literal (a shared boundary, a default
// location). With a cache each distinct literal is parsed once. Cached
// geometries are shared between results and must not be modified.
//
// Failed parses are never cached.
type GeometryCache struct {
	maxEntries int
	entries    map[string]*cacheEntry
	lru        *list.List // LRU list (most recent at front)
	hits       int64
	misses     int64
	evictions  int64
	mu         sync.RWMutex
}

// cacheEntry tracks a cached geometry
type cacheEntry struct {
	key      string
	geometry wkt.Geometry
	element  *list.Element // Position in LRU list
}

// NewGeometryCache creates a cache holding at most maxEntries geometries.
// A value of 0 or less means unlimited.
func NewGeometryCache(maxEntries int) *GeometryCache {
	return &GeometryCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*cacheEntry),
		lru:        list.New(),
	}
}

// Get returns the cached geometry for key, or calls load and caches its
// result. The second result reports a cache hit.
func (c *GeometryCache) Get(key string, load func() (wkt.Geometry, error)) (wkt.Geometry, bool, error) {
	// Fast path: check cache with read lock
	c.mu.RLock()
	entry, ok := c.entries[key]
	var cached wkt.Geometry
	if ok {
		cached = entry.geometry
	}
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.hits++
		c.lru.MoveToFront(entry.element)
		c.mu.Unlock()
		return cached, true, nil
	}

	// Cache miss - parse
	g, err := load()
	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
	if err != nil {
		return nil, false, err
	}

	c.Add(key, g)
	return g, false, nil
}

// Add stores g under key, evicting least-recently-used entries to make room.
func (c *GeometryCache) Add(key string, g wkt.Geometry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.geometry = g
		c.lru.MoveToFront(entry.element)
		return
	}

	if c.maxEntries > 0 {
		for c.lru.Len() >= c.maxEntries {
			c.evictLRU()
		}
	}

	entry := &cacheEntry{key: key, geometry: g}
	entry.element = c.lru.PushFront(entry)
	c.entries[key] = entry
}

// evictLRU removes the least recently used geometry from cache.
// Must be called with c.mu locked.
func (c *GeometryCache) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}

	entry := elem.Value.(*cacheEntry)
	c.lru.Remove(elem)
	delete(c.entries, entry.key)
	c.evictions++
}

// Remove explicitly removes a literal from the cache.
func (c *GeometryCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.lru.Remove(entry.element)
		delete(c.entries, key)
	}
}

// Clear removes all geometries from the cache. Counters are kept.
func (c *GeometryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.lru.Init()
}

// Stats returns cache statistics.
func (c *GeometryCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{
		Entries:    len(c.entries),
		MaxEntries: c.maxEntries,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
	}
}

// CacheStats holds cache performance metrics.
type CacheStats struct {
	Entries    int   // Number of geometries currently cached
	MaxEntries int   // Capacity, 0 for unlimited
	Hits       int64 // Lookups answered from the cache
	Misses     int64 // Lookups that parsed the literal
	Evictions  int64 // Entries dropped to make room
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
