package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "db_server:\n  host: localhost\n"))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, "localhost", cfg.DbServer.Host)
	require.Equal(t, int32(10), cfg.DbServer.MaxConns)
	require.Equal(t, 5, cfg.DbServer.ConnectRetries)
	require.Equal(t, "memory", cfg.Cache.Backend)
	require.Equal(t, 5, cfg.Rates.QueryTimeoutSec)
	require.Equal(t, 1000, cfg.Rates.MaxBatch)
	require.Equal(t, "PoloTrack", cfg.Feedback.AppName)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, 60, cfg.Scheduler.StatsIntervalSec)
}

func TestLoad_FileValues(t *testing.T) {
	body := `
http_server:
  port: "9090"
db_server:
  host: db
  port: "5433"
  user: rates
  name: trades
  max_conns: 4
cache:
  backend: ristretto
  max_items: 500
rates:
  max_batch: 50
`
	cfg, err := Load(writeConfig(t, body))
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.HTTPServer.Port)
	require.Equal(t, int32(4), cfg.DbServer.MaxConns)
	require.Equal(t, "ristretto", cfg.Cache.Backend)
	require.Equal(t, int64(500), cfg.Cache.MaxItems)
	require.Equal(t, 50, cfg.Rates.MaxBatch)
	require.Contains(t, cfg.DbServer.GetConnectionStr(), "host=db port=5433")
	require.Contains(t, cfg.DbServer.GetConnectionStr(), "pool_max_conns=4")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "from-env")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(writeConfig(t, "db_server:\n  host: from-file\n"))
	require.NoError(t, err)

	require.Equal(t, "from-env", cfg.DbServer.Host)
	require.Equal(t, int32(7), cfg.DbServer.MaxConns)
	require.Equal(t, "redis", cfg.Cache.Backend)
	require.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
}

func TestLoad_UnknownCacheBackend(t *testing.T) {
	_, err := Load(writeConfig(t, "cache:\n  backend: memcached\n"))
	require.ErrorContains(t, err, `unknown cache backend "memcached"`)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "error reading config file")
}

func TestLoad_NonPositiveQueryTimeout(t *testing.T) {
	for _, v := range []string{"0", "-3"} {
		_, err := Load(writeConfig(t, "rates:\n  query_timeout_sec: "+v+"\n"))
		require.ErrorContains(t, err, "rates.query_timeout_sec must be positive, got "+v)
	}
}
