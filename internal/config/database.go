package config

import (
	"catalog-backend/internal/infrastructure/database"
)

// PostgresConfig converts the database section into the pool configuration
func (c DatabaseConfig) PostgresConfig() *database.DBConfig {
	return &database.DBConfig{
		Host:              c.Host,
		Port:              c.Port,
		Username:          c.User,
		Password:          c.Password,
		DBName:            c.Database,
		SSLMode:           c.SSLMode,
		MaxConns:          c.MaxConns,
		MinConns:          c.MinConns,
		MaxConnLifetime:   c.MaxConnLifetime,
		MaxConnIdleTime:   c.MaxConnIdleTime,
		HealthCheckPeriod: c.HealthCheckPeriod,
		MaxRetries:        c.MaxRetries,
		RetryDelay:        c.RetryDelay,
		ConnectTimeout:    c.ConnectTimeout,
	}
}
