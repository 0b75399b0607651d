package db

import (
	"context"
	"histrates/internal/config"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// CreatePoolAndPing opens the pool and waits until the database answers a ping, retrying
// with exponential backoff up to cfg.ConnectRetries times.
func CreatePoolAndPing(ctx context.Context, cfg config.DbServer) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetConnectionStr())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 500 * time.Millisecond
	retry := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(cfg.ConnectRetries)), ctx)
	ping := func() error {
		pingErr := pool.Ping(ctx)
		if pingErr != nil {
			logrus.WithError(pingErr).Warn("Postgres ping failed")
		}
		return pingErr
	}
	if err = backoff.Retry(ping, retry); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
