package metrics

import (
	"time"

	"histrates/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors exported by the rate engine. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	Outcomes           *prometheus.CounterVec
	CacheLookups       *prometheus.CounterVec
	StoreQueries       *prometheus.CounterVec
	StoreQueryDuration prometheus.Histogram

	CacheEntries  prometheus.Gauge
	PoolAcquired  prometheus.Gauge
	PoolTotal     prometheus.Gauge
	BatchRequests prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "histrates_outcomes_total",
				Help: "Resolved rate lookups by outcome status",
			},
			[]string{"status"},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "histrates_cache_lookups_total",
				Help: "Rate cache lookups by result",
			},
			[]string{"result"},
		),
		StoreQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "histrates_store_queries_total",
				Help: "Nearest-trade store queries by result",
			},
			[]string{"result"},
		),
		StoreQueryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "histrates_store_query_duration_seconds",
				Help:    "Nearest-trade store query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		CacheEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "histrates_cache_entries",
				Help: "Number of memoized rate lookups",
			},
		),
		PoolAcquired: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "histrates_db_pool_acquired_conns",
				Help: "Store connections currently in use",
			},
		),
		PoolTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "histrates_db_pool_total_conns",
				Help: "Store connections currently open",
			},
		),
		BatchRequests: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "histrates_batch_size",
				Help:    "Number of lookups per batch request",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
	}
}

func (m *Metrics) ObserveOutcome(o domain.Outcome) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(string(o.Status)).Inc()
}

func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}

// ObserveStoreQuery records one store round trip; rows is the number of rows returned.
func (m *Metrics) ObserveStoreQuery(elapsed time.Duration, rows int, err error) {
	if m == nil {
		return
	}
	m.StoreQueryDuration.Observe(elapsed.Seconds())
	switch {
	case err != nil:
		m.StoreQueries.WithLabelValues("error").Inc()
	case rows == 0:
		m.StoreQueries.WithLabelValues("empty").Inc()
	default:
		m.StoreQueries.WithLabelValues("ok").Inc()
	}
}

func (m *Metrics) ObserveBatch(size int) {
	if m == nil {
		return
	}
	m.BatchRequests.Observe(float64(size))
}

func (m *Metrics) SetCacheEntries(n int) {
	if m == nil {
		return
	}
	m.CacheEntries.Set(float64(n))
}

func (m *Metrics) SetPoolStats(s domain.PoolStats) {
	if m == nil {
		return
	}
	m.PoolAcquired.Set(float64(s.AcquiredConns))
	m.PoolTotal.Set(float64(s.TotalConns))
}
