package rate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"histrates/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockTradeStore struct{ mock.Mock }

func (m *MockTradeStore) QueryNearest(ctx context.Context, base string, quote string, center time.Time, radiusHours int) ([]domain.Observation, error) {
	args := m.Called(ctx, base, quote, center, radiusHours)
	rows, _ := args.Get(0).([]domain.Observation)
	return rows, args.Error(1)
}

type MockRateCache struct{ mock.Mock }

func (m *MockRateCache) Get(ctx context.Context, q domain.RateQuery) (domain.CachedRate, bool) {
	args := m.Called(ctx, q)
	c, _ := args.Get(0).(domain.CachedRate)
	return c, args.Bool(1)
}

func (m *MockRateCache) Set(ctx context.Context, q domain.RateQuery, rate *float64) {
	m.Called(ctx, q, rate)
}

func (m *MockRateCache) Len() int {
	return m.Called().Int(0)
}

type MockPoolStats struct{ mock.Mock }

func (m *MockPoolStats) PoolStats() domain.PoolStats {
	s, _ := m.Called().Get(0).(domain.PoolStats)
	return s
}

// slowStore tracks how many queries run at the same time.
type slowStore struct {
	delay   time.Duration
	current atomic.Int32
	peak    atomic.Int32
	mu      sync.Mutex
	calls   int
}

func (s *slowStore) QueryNearest(_ context.Context, _ string, _ string, _ time.Time, _ int) ([]domain.Observation, error) {
	n := s.current.Add(1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(s.delay)
	s.current.Add(-1)

	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return []domain.Observation{{Rate: 1.5, AgeMinutes: 30}}, nil
}
