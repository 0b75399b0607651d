package cache

import (
	"context"
	"sync"

	"histrates/internal/domain"
)

type memoryKey struct {
	pair domain.Pair
	at   int64
}

// MemoryRateCache is an unbounded process-wide cache. Entries are never evicted since
// historical rates do not change once recorded.
type MemoryRateCache struct {
	mu      sync.Mutex
	entries map[memoryKey]*float64
}

func NewMemoryRateCache() *MemoryRateCache {
	return &MemoryRateCache{entries: make(map[memoryKey]*float64)}
}

func (c *MemoryRateCache) Get(_ context.Context, q domain.RateQuery) (domain.CachedRate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rate, ok := c.entries[toMemoryKey(q)]
	if !ok {
		return domain.CachedRate{}, false
	}
	return domain.CachedRate{Rate: copyRate(rate)}, true
}

func (c *MemoryRateCache) Set(_ context.Context, q domain.RateQuery, rate *float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[toMemoryKey(q)] = copyRate(rate)
}

func (c *MemoryRateCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func toMemoryKey(q domain.RateQuery) memoryKey {
	return memoryKey{pair: q.Pair, at: domain.NaiveTimestamp(q.At).Unix()}
}

func copyRate(rate *float64) *float64 {
	if rate == nil {
		return nil
	}
	v := *rate
	return &v
}

