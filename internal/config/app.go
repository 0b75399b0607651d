package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port        string   `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DbServer struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Pass           string `mapstructure:"pass"`
	Name           string `mapstructure:"name"`
	MaxConns       int32  `mapstructure:"max_conns"`
	ConnectRetries int    `mapstructure:"connect_retries"`
	Migrate        bool   `mapstructure:"migrate"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=%d",
		config.User, config.Pass, config.Host, config.Port, config.Name, config.MaxConns,
	)
}

// Cache selects the rate cache backend: "memory" (unbounded), "ristretto" (bounded by
// MaxItems) or "redis" (shared between instances).
type Cache struct {
	Backend       string `mapstructure:"backend"`
	MaxItems      int64  `mapstructure:"max_items"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

type Rates struct {
	QueryTimeoutSec int `mapstructure:"query_timeout_sec"`
	MaxBatch        int `mapstructure:"max_batch"`
}

type Feedback struct {
	URL            string `mapstructure:"url"`
	Password       string `mapstructure:"password"`
	AppName        string `mapstructure:"app_name"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Scheduler struct {
	StatsIntervalSec int `mapstructure:"stats_interval_sec"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Cache      Cache      `mapstructure:"cache"`
	Rates      Rates      `mapstructure:"rates"`
	Feedback   Feedback   `mapstructure:"feedback"`
	Logging    Logging    `mapstructure:"logging"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
}

// Init reads config.yaml (or CONFIG_PATH) and overlays environment variables, optionally
// loaded from a .env file.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	return Load(configPath)
}

func Load(path string) (*AppConfig, error) {
	var cfg AppConfig
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.cors_origins", []string{"*"})
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("db_server.connect_retries", 5)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.max_items", 1_000_000)
	v.SetDefault("rates.query_timeout_sec", 5)
	v.SetDefault("rates.max_batch", 1000)
	v.SetDefault("feedback.app_name", "PoloTrack")
	v.SetDefault("feedback.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("scheduler.stats_interval_sec", 60)

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = v.BindEnv("db_server.migrate", "DB_MIGRATE")

	// cache env vars
	_ = v.BindEnv("cache.backend", "CACHE_BACKEND")
	_ = v.BindEnv("cache.redis_addr", "REDIS_ADDR")
	_ = v.BindEnv("cache.redis_password", "REDIS_PASSWORD")

	// feedback env vars
	_ = v.BindEnv("feedback.url", "FEEDBACK_URL")
	_ = v.BindEnv("feedback.password", "FEEDBACK_PASSWORD")

	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Rates.QueryTimeoutSec <= 0 {
		return nil, fmt.Errorf("rates.query_timeout_sec must be positive, got %d", cfg.Rates.QueryTimeoutSec)
	}

	switch cfg.Cache.Backend {
	case "memory", "ristretto", "redis":
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
	return &cfg, nil
}
