package adapters

import (
	"context"
	"histrates/internal/domain"
	"time"
)

// TradeStore answers windowed nearest-trade queries. Rows are ordered by ascending
// distance from center; callers use at most the first one.
type TradeStore interface {
	QueryNearest(ctx context.Context, base string, quote string, center time.Time, radiusHours int) ([]domain.Observation, error)
}

type TradeWriter interface {
	EnsureSeries(ctx context.Context, base string, quote string) error
	InsertTrades(ctx context.Context, base string, quote string, trades []domain.Trade) (int64, error)
	ListSeries(ctx context.Context) ([]domain.Pair, error)
}

// RateCache memoizes resolved lookups. Get reports false when the query was never cached.
type RateCache interface {
	Get(ctx context.Context, q domain.RateQuery) (domain.CachedRate, bool)
	Set(ctx context.Context, q domain.RateQuery, rate *float64)
	Len() int
}

type PoolStatsProvider interface {
	PoolStats() domain.PoolStats
}

type FeedbackClient interface {
	Send(ctx context.Context, email string, message string) error
}
