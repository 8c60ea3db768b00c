package cache

import (
	"context"
	"sync"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	"github.com/fiscly/fiscly_backend/internal/core/ports/providers"
)

// MemoryRateCache keeps rates for the life of the process. Entries never expire.
// Concurrent misses on the same key may each fetch and Set; the last write wins.
type MemoryRateCache struct {
	mu    sync.RWMutex
	rates map[domain.RateKey]domain.CachedRate
}

var _ providers.RateCache = (*MemoryRateCache)(nil)

func NewMemoryRateCache() *MemoryRateCache {
	return &MemoryRateCache{rates: make(map[domain.RateKey]domain.CachedRate)}
}

func (c *MemoryRateCache) Get(_ context.Context, key domain.RateKey) (*domain.CachedRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rate, ok := c.rates[key]
	if !ok {
		return nil, false
	}
	return &rate, true
}

func (c *MemoryRateCache) Set(_ context.Context, key domain.RateKey, rate domain.CachedRate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates[key] = rate
}

// Len returns the number of cached rates.
func (c *MemoryRateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rates)
}
