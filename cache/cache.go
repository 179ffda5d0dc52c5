// Package cache memoizes constrained search results keyed by grid
// fingerprint and run-length policy, with LRU eviction and msgpack
// persistence. A ResultCache is safe for concurrent use.
package cache

import (
	"container/list"
	"sync"

	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// DefaultSize is used when New is given a non-positive size.
const DefaultSize = 1024

// Key identifies one query: a grid by content and a policy.
type Key struct {
	Grid   uint64 `msgpack:"grid"`
	MinRun int    `msgpack:"min_run"`
	MaxRun int    `msgpack:"max_run"`
}

// KeyFor builds the Key for searching g under p.
func KeyFor(g *gridgraph.CostGrid, p dijkstra.Policy) Key {
	return Key{Grid: g.Fingerprint(), MinRun: p.MinRun, MaxRun: p.MaxRun}
}

// Policy returns the policy part of the key.
func (k Key) Policy() dijkstra.Policy {
	return dijkstra.Policy{MinRun: k.MinRun, MaxRun: k.MaxRun}
}

// Entry is a memoized answer. Reachable=false records a "no path" outcome;
// Cost is meaningless in that case.
type Entry struct {
	Cost      int64 `msgpack:"cost"`
	Reachable bool  `msgpack:"reachable"`
}

// ResultCache is a bounded LRU map from Key to Entry.
type ResultCache struct {
	mu        sync.Mutex
	entries   map[Key]*list.Element
	evictList *list.List
	maxSize   int
}

type cacheEntry struct {
	key   Key
	value Entry
}

// New creates an empty cache holding at most maxSize entries
// (0 or negative means DefaultSize).
func New(maxSize int) *ResultCache {
	if maxSize <= 0 {
		maxSize = DefaultSize
	}

	return &ResultCache{
		entries:   make(map[Key]*list.Element),
		evictList: list.New(),
		maxSize:   maxSize,
	}
}

// Get returns the entry for k and marks it most recently used.
func (c *ResultCache) Get(k Key) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[k]
	if !ok {
		return Entry{}, false
	}
	c.evictList.MoveToFront(elem)

	return elem.Value.(*cacheEntry).value, true
}

// Put stores v under k, evicting the least recently used entry when full.
func (c *ResultCache) Put(k Key, v Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(k, v)
}

func (c *ResultCache) put(k Key, v Entry) {
	// If already cached, update and move to front
	if elem, ok := c.entries[k]; ok {
		c.evictList.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = v
		return
	}

	c.entries[k] = c.evictList.PushFront(&cacheEntry{key: k, value: v})
	if c.evictList.Len() > c.maxSize {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entry.
func (c *ResultCache) evictOldest() {
	elem := c.evictList.Back()
	if elem != nil {
		c.evictList.Remove(elem)
		delete(c.entries, elem.Value.(*cacheEntry).key)
	}
}

// Len returns the number of cached entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evictList.Len()
}

// Stats reports cache occupancy for monitoring.
type Stats struct {
	Size    int
	MaxSize int
}

// Stats returns current cache statistics.
func (c *ResultCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{Size: c.evictList.Len(), MaxSize: c.maxSize}
}
