// Package cache holds the in-memory TTL cache for the published
// property catalog. The cache is a best-effort accelerator over the
// Drive API, not a store of record: it holds at most one snapshot, which
// a successful refresh replaces wholesale.
package cache

import (
	"sync"
	"time"

	"inmobiliaria-premium/models"
)

// Catalog caches the last successfully ingested property list together
// with its capture time. A snapshot is valid while now - capturedAt is
// below the configured TTL.
type Catalog struct {
	mu         sync.RWMutex
	snapshot   []models.Property
	capturedAt time.Time
	ttl        time.Duration
}

// NewCatalog creates an empty catalog cache with the given TTL.
func NewCatalog(ttl time.Duration) *Catalog {
	return &Catalog{ttl: ttl}
}

// Get returns the cached snapshot and true if it is still fresh, or
// nil and false otherwise.
func (c *Catalog) Get() ([]models.Property, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil || time.Since(c.capturedAt) >= c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

// Put replaces the cached snapshot and stamps it with the current time.
func (c *Catalog) Put(properties []models.Property) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = properties
	c.capturedAt = time.Now()
}

// Invalidate clears the snapshot so the next read misses.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
	c.capturedAt = time.Time{}
}

// CapturedAt returns when the current snapshot was taken. The bool is
// false when nothing is cached.
func (c *Catalog) CapturedAt() (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return time.Time{}, false
	}
	return c.capturedAt, true
}
