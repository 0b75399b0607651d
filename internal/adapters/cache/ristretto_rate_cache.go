package cache

import (
	"context"
	"fmt"

	"histrates/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoRateCache is the size-bounded alternative to MemoryRateCache. Least valuable
// entries are evicted once maxItems is reached, after which they are simply looked up again.
type RistrettoRateCache struct {
	cache *ristretto.Cache
}

func NewRistrettoRateCache(maxItems int64) (*RistrettoRateCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate cache failed: %w", err)
	}
	return &RistrettoRateCache{cache: c}, nil
}

func (c *RistrettoRateCache) Get(_ context.Context, q domain.RateQuery) (domain.CachedRate, bool) {
	if v, ok := c.cache.Get(q.Key()); ok {
		cached, ok := v.(domain.CachedRate)
		return cached, ok
	}
	return domain.CachedRate{}, false
}

func (c *RistrettoRateCache) Set(_ context.Context, q domain.RateQuery, rate *float64) {
	c.cache.Set(q.Key(), domain.CachedRate{Rate: copyRate(rate)}, 1)
	// ristretto applies writes asynchronously
	c.cache.Wait()
}

func (c *RistrettoRateCache) Len() int {
	m := c.cache.Metrics
	if m == nil {
		return 0
	}
	return int(m.KeysAdded() - m.KeysEvicted())
}

func (c *RistrettoRateCache) Close() { c.cache.Close() }
