package rate

import (
	"histrates/internal/adapters"
	"histrates/internal/metrics"

	"github.com/sirupsen/logrus"
)

// ReportStats publishes the cache size and, when available, store pool usage.
func ReportStats(execID string, cache adapters.RateCache, pool adapters.PoolStatsProvider, m *metrics.Metrics) {
	entries := cache.Len()
	m.SetCacheEntries(entries)

	fields := logrus.Fields{"exec_id": execID, "cache_entries": entries}
	if pool != nil {
		stats := pool.PoolStats()
		m.SetPoolStats(stats)
		fields["pool_acquired"] = stats.AcquiredConns
		fields["pool_idle"] = stats.IdleConns
		fields["pool_total"] = stats.TotalConns
	}
	logrus.WithFields(fields).Info("Rate engine stats")
}
