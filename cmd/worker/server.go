package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/internal/infrastructure/queue"
)

// asynqServer wraps asynq.Server with logging around its lifecycle
type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(cfg *config.Config, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		queue.RedisOpt(cfg.Redis),
		asynq.Config{
			Queues:      map[string]int{cfg.Events.Queue: 1},
			Concurrency: cfg.Events.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("[Asynq] task failed")
			}),
		},
	)

	go func() {
		log.Info().Str("queue", cfg.Events.Queue).Msg("[Worker] Starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("[Worker] failed")
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks up to asynq's ShutdownTimeout
func (s *asynqServer) Shutdown() {
	log.Info().Msg("[Worker] Shutting down")
	s.Server.Shutdown()
	log.Info().Msg("[Worker] Stopped")
}
