package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultJWTSecret = "change-me-in-production"
)

// Config holds the whole application configuration.
// Values come from defaults, an optional config.yaml, then the environment.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Events   EventsConfig
	Log      LogConfig
}

type AppConfig struct {
	Name            string
	Environment     string // development, staging, production
	Port            string
	Version         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver   string // postgres or sqlite
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	ConnectTimeout    time.Duration

	SQLitePath string
	// ApplySchema creates missing tables at startup
	ApplySchema bool
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	AuthEnabled bool
	TokenExpiry time.Duration
}

// EventsConfig controls publication events on the asynq queue
type EventsConfig struct {
	Enabled     bool
	Queue       string
	Concurrency int
	// AuditCron schedules the worker's unauthored-books audit; empty disables it
	AuditCron string
	// HealthPort is where the worker serves /health and /ready
	HealthPort string
}

type LogConfig struct {
	Level string
}

// Load reads configuration. configPaths are searched for config.yaml.
func Load(configPaths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if len(configPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Environment:     v.GetString("APP_ENV"),
			Port:            v.GetString("APP_PORT"),
			Version:         v.GetString("APP_VERSION"),
			ShutdownTimeout: v.GetDuration("APP_SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Driver:            strings.ToLower(v.GetString("DB_DRIVER")),
			Host:              v.GetString("DB_HOST"),
			Port:              v.GetInt("DB_PORT"),
			User:              v.GetString("DB_USER"),
			Password:          v.GetString("DB_PASSWORD"),
			Database:          v.GetString("DB_NAME"),
			SSLMode:           v.GetString("DB_SSLMODE"),
			MaxConns:          v.GetInt32("DB_MAX_CONNS"),
			MinConns:          v.GetInt32("DB_MIN_CONNS"),
			MaxConnLifetime:   v.GetDuration("DB_MAX_CONN_LIFETIME"),
			MaxConnIdleTime:   v.GetDuration("DB_MAX_CONN_IDLE_TIME"),
			HealthCheckPeriod: v.GetDuration("DB_HEALTH_CHECK_PERIOD"),
			MaxRetries:        v.GetInt("DB_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("DB_RETRY_DELAY"),
			ConnectTimeout:    v.GetDuration("DB_CONNECT_TIMEOUT"),
			SQLitePath:        v.GetString("SQLITE_PATH"),
			ApplySchema:       v.GetBool("DB_APPLY_SCHEMA"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			AuthEnabled: v.GetBool("AUTH_ENABLED"),
			TokenExpiry: v.GetDuration("JWT_TOKEN_EXPIRY"),
		},
		Events: EventsConfig{
			Enabled:     v.GetBool("EVENTS_ENABLED"),
			Queue:       v.GetString("EVENTS_QUEUE"),
			Concurrency: v.GetInt("EVENTS_CONCURRENCY"),
			AuditCron:   v.GetString("EVENTS_AUDIT_CRON"),
			HealthPort:  v.GetString("WORKER_HEALTH_PORT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "Catalog API")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("APP_SHUTDOWN_TIMEOUT", "30s")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "catalog")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_CONN_LIFETIME", "5m")
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", "1m")
	v.SetDefault("DB_HEALTH_CHECK_PERIOD", "1m")
	v.SetDefault("DB_MAX_RETRIES", 5)
	v.SetDefault("DB_RETRY_DELAY", "1s")
	v.SetDefault("DB_CONNECT_TIMEOUT", "10s")
	v.SetDefault("SQLITE_PATH", "catalog.db")
	v.SetDefault("DB_APPLY_SCHEMA", false)

	v.SetDefault("REDIS_HOST", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_TOKEN_EXPIRY", "24h")

	v.SetDefault("EVENTS_ENABLED", false)
	v.SetDefault("EVENTS_QUEUE", "default")
	v.SetDefault("EVENTS_CONCURRENCY", 5)
	v.SetDefault("EVENTS_AUDIT_CRON", "0 3 * * *")
	v.SetDefault("WORKER_HEALTH_PORT", "9999")

	v.SetDefault("LOG_LEVEL", "info")
}

// Validate rejects configurations that cannot work
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres driver")
		}
		if c.Database.MaxRetries < 1 {
			return fmt.Errorf("DB_MAX_RETRIES must be at least 1")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.JWT.AuthEnabled && c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is set")
	}
	if c.IsProduction() && c.JWT.AuthEnabled && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be changed in production")
	}

	if c.Events.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when EVENTS_ENABLED is set")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
