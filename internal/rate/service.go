package rate

import (
	"context"
	"time"

	"histrates/internal/adapters"
	"histrates/internal/domain"
	"histrates/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// trades younger than this may still be superseded by late records closer to the
	// requested timestamp
	cacheableAgeMinutes = 60
	defaultParallelism  = 10
)

// Service resolves rate lookups cache-first and falls back to the trade store.
type Service struct {
	resolver    *Resolver
	cache       adapters.RateCache
	parallelism int
	metrics     *metrics.Metrics
	inflight    singleflight.Group
}

// Cacheable reports whether a successful lookup may be memoized. A nil observation means
// the window held no trades, which cannot change for a past timestamp.
func Cacheable(obs *domain.Observation) bool {
	return obs == nil || obs.AgeMinutes > cacheableAgeMinutes
}

// Resolve validates pairText and returns the rate nearest to at.
func (s *Service) Resolve(ctx context.Context, pairText string, at time.Time) domain.Outcome {
	outcome := s.resolve(ctx, pairText, at)
	s.metrics.ObserveOutcome(outcome)
	return outcome
}

// ResolveMany resolves every request independently with at most parallelism store queries
// in flight. The result has one outcome per request, in request order.
func (s *Service) ResolveMany(ctx context.Context, requests []domain.RateRequest) []domain.Outcome {
	batchID := uuid.NewString()
	logrus.WithFields(logrus.Fields{"batch_id": batchID, "size": len(requests)}).Debug("resolving rate batch")
	s.metrics.ObserveBatch(len(requests))

	outcomes := make([]domain.Outcome, len(requests))
	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for i, req := range requests {
		g.Go(func() error {
			outcomes[i] = s.Resolve(ctx, req.Pair, req.At)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (s *Service) resolve(ctx context.Context, pairText string, at time.Time) domain.Outcome {
	pair, err := Normalize(pairText)
	if err != nil {
		return domain.InvalidPair(err)
	}
	q := domain.NewRateQuery(pair, at)

	if cached, ok := s.cache.Get(ctx, q); ok {
		s.metrics.ObserveCacheLookup(true)
		return domain.FromCached(cached)
	}
	s.metrics.ObserveCacheLookup(false)

	if ctx.Err() != nil {
		return domain.NoData(false)
	}

	// concurrent misses for the same key share one store query; the shared call must not
	// fail just because the caller that started it went away
	v, _, _ := s.inflight.Do(q.Key(), func() (any, error) {
		return s.lookup(context.WithoutCancel(ctx), q), nil
	})
	return v.(domain.Outcome)
}

func (s *Service) lookup(ctx context.Context, q domain.RateQuery) domain.Outcome {
	obs, err := s.resolver.Resolve(ctx, q.Pair, q.At)
	if err != nil {
		// failure does not prove absence, so it is reported as no data but never cached
		logrus.WithError(err).WithFields(logrus.Fields{
			"pair": q.Pair.String(),
			"at":   q.At.Format(domain.TimestampLayout),
		}).Warn("nearest trade query failed")
		return domain.NoData(false)
	}

	if Cacheable(obs) {
		var rate *float64
		if obs != nil {
			rate = &obs.Rate
		}
		s.cache.Set(ctx, q, rate)
	}

	if obs == nil {
		return domain.NoData(false)
	}
	return domain.Found(obs.Rate, false)
}

func NewService(resolver *Resolver, cache adapters.RateCache, parallelism int, m *metrics.Metrics) *Service {
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}
	return &Service{
		resolver:    resolver,
		cache:       cache,
		parallelism: parallelism,
		metrics:     m,
	}
}
