package rate

import (
	"context"
	"time"

	"histrates/internal/adapters"
	"histrates/internal/currency"
	"histrates/internal/domain"
	"histrates/internal/metrics"
)

const (
	// fiat quotes are sampled at least once a day, so the window must be wide enough to
	// always contain one observation
	fiatSearchRadiusHours   = 13
	cryptoSearchRadiusHours = 4

	// DefaultQueryTimeout bounds a store query when no positive timeout is configured.
	DefaultQueryTimeout = 5 * time.Second

	// IdentityAgeMinutes is the age reported for BTC/BTC so that it is always cacheable.
	IdentityAgeMinutes = 1_000_000
)

type Resolver struct {
	store        adapters.TradeStore
	queryTimeout time.Duration
	metrics      *metrics.Metrics
}

// SearchRadius returns the half-width, in hours, of the window searched around a timestamp.
func SearchRadius(pair domain.Pair) int {
	if currency.IsFiat(pair.Quote) {
		return fiatSearchRadiusHours
	}
	return cryptoSearchRadiusHours
}

// Resolve finds the trade nearest to at for an already normalized pair. It returns
// (nil, nil) when no trade falls within the search window, and a *domain.QueryError when
// the store could not be queried.
func (r *Resolver) Resolve(ctx context.Context, pair domain.Pair, at time.Time) (*domain.Observation, error) {
	if IsIdentity(pair) {
		return &domain.Observation{Rate: 1, AgeMinutes: IdentityAgeMinutes}, nil
	}

	// shared lookups run detached from caller cancellation, so this deadline is their only bound
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	started := time.Now()
	rows, err := r.store.QueryNearest(ctx, pair.Base, pair.Quote, at, SearchRadius(pair))
	r.metrics.ObserveStoreQuery(time.Since(started), len(rows), err)
	if err != nil {
		return nil, &domain.QueryError{Pair: pair, At: at, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	obs := rows[0]
	return &obs, nil
}

func NewResolver(store adapters.TradeStore, queryTimeout time.Duration, m *metrics.Metrics) *Resolver {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &Resolver{store: store, queryTimeout: queryTimeout, metrics: m}
}
