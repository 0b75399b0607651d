package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"histrates/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	redisKeyPrefix  = "histrates:rate:"
	redisNoData     = "none"
	redisLenTimeout = 5 * time.Second
)

// RedisRateCache shares memoized lookups between service instances. Keys never expire.
// Redis failures degrade to cache misses.
type RedisRateCache struct {
	client redis.UniversalClient
}

func NewRedisRateCache(client redis.UniversalClient) *RedisRateCache {
	return &RedisRateCache{client: client}
}

func (c *RedisRateCache) Get(ctx context.Context, q domain.RateQuery) (domain.CachedRate, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+q.Key()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).WithField("key", q.Key()).Warn("redis rate cache get failed")
		}
		return domain.CachedRate{}, false
	}
	cached, err := decodeRedisRate(raw)
	if err != nil {
		logrus.WithError(err).WithField("key", q.Key()).Warn("redis rate cache holds malformed value")
		return domain.CachedRate{}, false
	}
	return cached, true
}

func (c *RedisRateCache) Set(ctx context.Context, q domain.RateQuery, rate *float64) {
	if err := c.client.Set(ctx, redisKeyPrefix+q.Key(), encodeRedisRate(rate), 0).Err(); err != nil {
		logrus.WithError(err).WithField("key", q.Key()).Warn("redis rate cache set failed")
	}
}

// Len counts cached keys with SCAN; it is meant for periodic stats, not hot paths.
func (c *RedisRateCache) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), redisLenTimeout)
	defer cancel()

	n := 0
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 1000).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		logrus.WithError(err).Warn("redis rate cache scan failed")
	}
	return n
}

func (c *RedisRateCache) Close() error { return c.client.Close() }

func encodeRedisRate(rate *float64) string {
	if rate == nil {
		return redisNoData
	}
	return strconv.FormatFloat(*rate, 'g', -1, 64)
}

func decodeRedisRate(raw string) (domain.CachedRate, error) {
	if raw == redisNoData {
		return domain.CachedRate{}, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.CachedRate{}, err
	}
	return domain.CachedRate{Rate: &v}, nil
}
