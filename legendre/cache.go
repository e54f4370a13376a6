// SPDX-License-Identifier: MIT

package legendre

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/golang/groupcache/lru"
)

// DefaultCacheEntries is the table capacity used by NewCache when a
// non-positive size is requested.
const DefaultCacheEntries = 8

// Cache is a Provider that keeps recently used tables keyed by the exact
// colatitude set and maximum degree. Tables are computed outside the lock;
// two goroutines missing on the same key may both compute it, and the
// last one stored wins.
type Cache struct {
	mu     sync.Mutex
	tables *lru.Cache
	next   Provider

	hits, misses uint64
}

// NewCache returns a cache holding at most maxEntries tables, filled from
// next (Direct when nil).
func NewCache(maxEntries int, next Provider) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}
	if next == nil {
		next = Direct{}
	}

	return &Cache{tables: lru.New(maxEntries), next: next}
}

// Table implements Provider.
func (c *Cache) Table(colat []float64, lmax int) (*Table, error) {
	key := cacheKey(colat, lmax)

	c.mu.Lock()
	if v, ok := c.tables.Get(key); ok {
		c.hits++
		c.mu.Unlock()

		return v.(*Table), nil
	}
	c.misses++
	c.mu.Unlock()

	tab, err := c.next.Table(colat, lmax)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tables.Add(key, tab)
	c.mu.Unlock()

	return tab, nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tables.Len()
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// Purge drops every cached table and resets the counters.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables.Clear()
	c.hits, c.misses = 0, 0
}

// cacheKey encodes lmax and the bit patterns of every colatitude.
func cacheKey(colat []float64, lmax int) string {
	buf := make([]byte, 8*(len(colat)+1))
	binary.LittleEndian.PutUint64(buf, uint64(lmax))
	for i, th := range colat {
		binary.LittleEndian.PutUint64(buf[8*(i+1):], math.Float64bits(th))
	}

	return string(buf)
}
