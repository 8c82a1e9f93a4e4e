package queue

import (
	"catalog-backend/internal/config"

	"github.com/hibiken/asynq"
)

// RedisOpt builds the asynq connection options from the Redis config
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Host,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(RedisOpt(cfg))
}
