package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"histrates/internal/adapters"
	"histrates/internal/adapters/cache"
	"histrates/internal/adapters/httpclient"
	"histrates/internal/adapters/postgres"
	"histrates/internal/api"
	"histrates/internal/config"
	"histrates/internal/metrics"
	"histrates/internal/platform/db"
	httpserver "histrates/internal/platform/http"
	"histrates/internal/rate"
	"histrates/internal/rate/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if appCfg.DbServer.Migrate {
		if err = db.Migrate(startupCtx, pool); err != nil {
			logrus.WithError(err).Error("Failed to apply migrations")
			return err
		}
		logrus.Info("✅ Migrations applied")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Rate cache
	rateCache, closeCache, err := newRateCache(startupCtx, appCfg.Cache)
	if err != nil {
		logrus.WithError(err).Error("Failed to create rate cache")
		return err
	}
	defer closeCache()
	logrus.WithField("backend", appCfg.Cache.Backend).Info("✅ Rate cache ready")

	// Services
	tradeStore := postgres.NewTradeStore(pool)
	queryTimeout := time.Duration(appCfg.Rates.QueryTimeoutSec) * time.Second
	resolver := rate.NewResolver(tradeStore, queryTimeout, appMetrics)
	rateService := rate.NewService(resolver, rateCache, int(pool.Config().MaxConns), appMetrics)

	scheduler := rate.NewScheduler(rateCache, tradeStore, appMetrics, time.Duration(appCfg.Scheduler.StatsIntervalSec)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// External clients
	feedbackTimeout := time.Duration(appCfg.Feedback.TimeoutSeconds) * time.Second
	if feedbackTimeout <= 0 {
		feedbackTimeout = 10 * time.Second
	}
	feedbackClient := httpclient.NewFeedbackClient(
		&http.Client{Timeout: feedbackTimeout},
		appCfg.Feedback.URL,
		appCfg.Feedback.AppName,
		appCfg.Feedback.Password,
	)

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateService, feedbackClient, tradeStore, appCfg.Rates.MaxBatch)
	router := api.NewRouter(rateHandler, registry, appCfg.HTTPServer.CORSOrigins)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// newRateCache builds the configured cache backend and a func releasing its resources.
func newRateCache(ctx context.Context, cfg config.Cache) (adapters.RateCache, func(), error) {
	switch cfg.Backend {
	case "ristretto":
		c, err := cache.NewRistrettoRateCache(cfg.MaxItems)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr, err)
		}
		c := cache.NewRedisRateCache(client)
		return c, func() { _ = c.Close() }, nil
	default:
		return cache.NewMemoryRateCache(), func() {}, nil
	}
}
