package rate

import (
	"context"
	"sync"
	"time"

	"histrates/internal/adapters"
	"histrates/internal/metrics"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultStatsInterval = time.Minute

// Scheduler periodically runs ReportStats.
type Scheduler struct {
	cache    adapters.RateCache
	pool     adapters.PoolStatsProvider
	metrics  *metrics.Metrics
	interval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	job := func() {
		ReportStats(uuid.NewString(), s.cache, s.pool, s.metrics)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(cache adapters.RateCache, pool adapters.PoolStatsProvider, m *metrics.Metrics, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &Scheduler{cache: cache, pool: pool, metrics: m, interval: interval}
}
