package queue

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Broker is a direct connection to the Redis instance backing the queue,
// used for health checks.
type Broker struct {
	Client *redis.Client
}

func NewBroker(cfg config.RedisConfig) *Broker {
	return &Broker{
		Client: redis.NewClient(&redis.Options{
			Addr:         cfg.Host,
			Password:     cfg.Password,
			DB:           cfg.DB,
			PoolSize:     4,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (b *Broker) Connect(ctx context.Context) error {
	log.Info().Str("addr", b.Client.Options().Addr).Msg("Connecting to Redis")

	if err := b.HealthCheck(ctx); err != nil {
		return err
	}

	log.Info().Msg("Redis connected")
	return nil
}

func (b *Broker) HealthCheck(ctx context.Context) error {
	if b.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := b.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (b *Broker) Close() error {
	if b.Client != nil {
		return b.Client.Close()
	}
	return nil
}
