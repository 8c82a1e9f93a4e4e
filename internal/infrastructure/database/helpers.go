package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Ping verifies the pool can reach the server within 5 seconds
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close is idempotent
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] Closing connection pool")
	db.Pool.Close()
	db.Pool = nil

	return nil
}

// PoolStats is a snapshot of the pool, exported as metrics
type PoolStats struct {
	AcquiredConns        int32
	IdleConns            int32
	TotalConns           int32
	MaxConns             int32
	AcquireCount         int64
	CanceledAcquireCount int64
	EmptyAcquireCount    int64
	AcquireDuration      time.Duration
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns:        raw.AcquiredConns(),
		IdleConns:            raw.IdleConns(),
		TotalConns:           raw.TotalConns(),
		MaxConns:             raw.MaxConns(),
		AcquireCount:         raw.AcquireCount(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		EmptyAcquireCount:    raw.EmptyAcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
	}, nil
}
