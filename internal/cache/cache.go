// Package cache remembers which shops have saved configuration so the
// storefront path can skip storage reads for shops that never configured
// the app. Entries expire on a TTL; writes to settings or rules invalidate
// the shop's entry.
package cache

import (
	"context"
	"sync"
	"time"
)

// ShopCache is the configuration-existence cache. GetConfigured reports a
// miss (ok false) when the shop is unknown, the entry expired, or the
// backend failed; callers fall through to storage on a miss.
type ShopCache interface {
	GetConfigured(ctx context.Context, shop string) (configured, ok bool)
	SetConfigured(ctx context.Context, shop string, configured bool)
	Invalidate(ctx context.Context, shop string)
}

type memoryEntry struct {
	configured bool
	expires    time.Time
}

// MemoryCache is the in-process ShopCache used when no Redis address is
// configured. Safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache builds an in-process cache with the given entry TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetConfigured implements ShopCache.
func (c *MemoryCache) GetConfigured(_ context.Context, shop string) (bool, bool) {
	c.mu.RLock()
	e, ok := c.entries[shop]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expires) {
		return false, false
	}
	return e.configured, true
}

// SetConfigured implements ShopCache.
func (c *MemoryCache) SetConfigured(_ context.Context, shop string, configured bool) {
	c.mu.Lock()
	c.entries[shop] = memoryEntry{configured: configured, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate implements ShopCache.
func (c *MemoryCache) Invalidate(_ context.Context, shop string) {
	c.mu.Lock()
	delete(c.entries, shop)
	c.mu.Unlock()
}
