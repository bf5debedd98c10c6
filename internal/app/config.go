package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// RedisAddr points at the key-value store holding the snapshot (and
	// backing the job queue). PGDSN, when set, switches snapshot
	// persistence to Postgres instead.
	RedisAddr   string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	PGDSN       string `envconfig:"PG_DSN"`
	SnapshotKey string `envconfig:"SNAPSHOT_KEY" default:"boku_no_shop_data"`

	GeminiAPIURL    string        `envconfig:"GEMINI_API_URL" default:"https://generativelanguage.googleapis.com"`
	GeminiAPIKey    string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel     string        `envconfig:"GEMINI_MODEL" default:"gemini-3-flash-preview"`
	InsightsTimeout time.Duration `envconfig:"INSIGHTS_TIMEOUT" default:"30s"`

	BackupCron string `envconfig:"BACKUP_CRON" default:"0 3 * * *"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.SnapshotKey == "" {
		return nil, errors.New("snapshot key must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// UsePostgresStore reports whether snapshot persistence goes to Postgres.
func (c *Config) UsePostgresStore() bool {
	return c != nil && c.PGDSN != ""
}
