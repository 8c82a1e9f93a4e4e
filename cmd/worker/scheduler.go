package main

import (
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/internal/infrastructure/queue"
)

// asynqScheduler wraps queue.Scheduler with additional functionality
type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(cfg *config.Config) *asynqScheduler {
	scheduler := queue.NewScheduler(cfg.Redis, cfg.Events)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatal().Err(err).Msg("[Scheduler] failed to register")
	}

	go func() {
		log.Info().Msg("[Scheduler] Starting")
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("[Scheduler] failed")
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	log.Info().Msg("[Scheduler] Shutting down")
	s.Scheduler.Shutdown()
	log.Info().Msg("[Scheduler] Stopped")
}
