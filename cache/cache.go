// ABOUTME: In-memory query cache with stale and garbage-collect windows
// ABOUTME: Thread-safe with ref-counted consumers and a background sweep

package cache

import (
	"log/slog"
	"strings"
	"sync"
	"time"
)

// State classifies a cache lookup.
type State int

const (
	// Miss: no usable entry; the caller must fetch.
	Miss State = iota
	// Stale: an entry exists but its stale window has elapsed. The value
	// is still returned so callers can serve it while revalidating.
	Stale
	// Fresh: the entry is within its stale window.
	Fresh
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "miss"
	}
}

type entry struct {
	data       any
	fetchedAt  time.Time
	staleAfter time.Duration
	gcAfter    time.Duration
	refs       int
	released   time.Time // last time refs dropped to zero
}

// Cache holds query results keyed by their semantic query identity.
// Entries stay fresh for their stale window, then linger until no
// consumer references them and their gc window has passed.
type Cache struct {
	mu    sync.Mutex
	store map[string]*entry
	stop  chan struct{}
}

func New() *Cache {
	c := &Cache{
		store: map[string]*entry{},
		stop:  make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Lookup returns the cached value for key and its state. Stale values
// are returned alongside the Stale state; callers decide whether to
// revalidate.
func (c *Cache) Lookup(key string) (any, State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.store[key]
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return nil, Miss
	}

	if time.Since(e.fetchedAt) > e.staleAfter {
		slog.Debug("Cache stale", "key", key)
		return e.data, Stale
	}
	slog.Debug("Cache hit", "key", key)
	return e.data, Fresh
}

// Store records a freshly fetched value. Writes overwrite whatever is
// present; the query layer serializes fetches per key, so a stored
// value is always at least as new as the one it replaces.
func (c *Cache) Store(key string, value any, staleAfter, gcAfter time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	refs := 0
	if prev, ok := c.store[key]; ok {
		refs = prev.refs
	}
	c.store[key] = &entry{
		data:       value,
		fetchedAt:  time.Now(),
		staleAfter: staleAfter,
		gcAfter:    gcAfter,
		refs:       refs,
		released:   time.Now(),
	}
	slog.Debug("Cache store", "key", key, "stale_after", staleAfter, "gc_after", gcAfter)
}

// Acquire marks a consumer as subscribed to key. Referenced entries are
// never swept regardless of age.
func (c *Cache) Acquire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.store[key]; ok {
		e.refs++
	}
}

// Release drops a consumer reference; the gc window starts when the last
// reference is released.
func (c *Cache) Release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.store[key]; ok && e.refs > 0 {
		e.refs--
		if e.refs == 0 {
			e.released = time.Now()
		}
	}
}

// Invalidate drops the entry for key so the next lookup misses.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.store[key]; ok {
		delete(c.store, key)
		slog.Debug("Cache invalidated", "key", key)
	}
}

// InvalidatePrefix drops every entry whose key starts with prefix. Used
// by mutations to invalidate a whole resource family (e.g. every
// filtered products key).
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.store {
		if strings.HasPrefix(key, prefix) {
			delete(c.store, key)
			slog.Debug("Cache invalidated", "key", key, "prefix", prefix)
		}
	}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store)
}

// Close stops the background sweep.
func (c *Cache) Close() {
	close(c.stop)
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired(time.Now())
		}
	}
}

// evictExpired removes unreferenced entries whose gc window has elapsed
// since their last release.
func (c *Cache) evictExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.store {
		if e.refs == 0 && now.Sub(e.released) > e.gcAfter {
			delete(c.store, key)
			slog.Debug("Cache evicted", "key", key)
		}
	}
}
