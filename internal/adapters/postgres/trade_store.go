package postgres

import (
	"context"
	"fmt"
	"histrates/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TradeStore keeps one table per ordered pair, named trades_<BASE>_<QUOTE>, holding
// (trade_time, rate) rows. trade_time is a naive UTC timestamp.
type TradeStore struct {
	pool *pgxpool.Pool
}

func seriesTable(base string, quote string) string {
	return pgx.Identifier{"trades_" + base + "_" + quote}.Sanitize()
}

func (s *TradeStore) QueryNearest(ctx context.Context, base string, quote string, center time.Time, radiusHours int) ([]domain.Observation, error) {
	q := fmt.Sprintf(`
		select rate,
		       floor(extract(epoch from ((now() at time zone 'utc') - trade_time)) / 60)::bigint as age_minutes
		from %s
		where trade_time between $1::timestamp - make_interval(hours => $2::int)
		                     and $1::timestamp + make_interval(hours => $2::int)
		order by abs(extract(epoch from (trade_time - $1::timestamp)))
		limit 1;
	`, seriesTable(base, quote))

	rows, err := s.pool.Query(ctx, q, center, radiusHours)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearest trade for '%s/%s': %w", base, quote, err)
	}
	observations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Observation, error) {
		var obs domain.Observation
		err := row.Scan(&obs.Rate, &obs.AgeMinutes)
		return obs, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read nearest trade for '%s/%s': %w", base, quote, err)
	}
	return observations, nil
}

// EnsureSeries creates the table for a pair if needed and registers it in trade_series.
func (s *TradeStore) EnsureSeries(ctx context.Context, base string, quote string) error {
	createTable := fmt.Sprintf(`
		create table if not exists %s (
		    trade_time timestamp        not null primary key,
		    rate       double precision not null
		);
	`, seriesTable(base, quote))
	const register = `insert into trade_series(base, quote) values ($1, $2) on conflict (base, quote) do nothing;`

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create series '%s/%s': %w", base, quote, err)
	}
	if _, err = tx.Exec(ctx, register, base, quote); err != nil {
		return fmt.Errorf("failed to register series '%s/%s': %w", base, quote, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// InsertTrades stores trades for a pair; trades whose timestamp is already recorded are
// skipped. It returns the number of inserted rows.
func (s *TradeStore) InsertTrades(ctx context.Context, base string, quote string, trades []domain.Trade) (int64, error) {
	if len(trades) == 0 {
		return 0, nil
	}

	q := fmt.Sprintf(`insert into %s(trade_time, rate) values ($1, $2) on conflict (trade_time) do nothing;`, seriesTable(base, quote))

	batch := &pgx.Batch{}
	for _, t := range trades {
		batch.Queue(q, domain.NaiveTimestamp(t.At), t.Rate)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	var inserted int64
	for range trades {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert trades for '%s/%s': %w", base, quote, err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func (s *TradeStore) ListSeries(ctx context.Context) ([]domain.Pair, error) {
	const q = `select base, quote from trade_series order by base, quote;`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade series: %w", err)
	}
	defer rows.Close()

	series := make([]domain.Pair, 0, 64)
	for rows.Next() {
		var p domain.Pair
		if err = rows.Scan(&p.Base, &p.Quote); err != nil {
			return nil, fmt.Errorf("failed to scan trade series: %w", err)
		}
		series = append(series, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade series: %w", err)
	}
	return series, nil
}

func (s *TradeStore) PoolStats() domain.PoolStats {
	stat := s.pool.Stat()
	return domain.PoolStats{
		AcquiredConns: stat.AcquiredConns(),
		IdleConns:     stat.IdleConns(),
		TotalConns:    stat.TotalConns(),
	}
}

func NewTradeStore(pool *pgxpool.Pool) *TradeStore {
	return &TradeStore{pool: pool}
}
