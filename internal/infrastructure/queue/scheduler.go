package queue

import (
	"fmt"
	"time"

	"catalog-backend/internal/config"
	"catalog-backend/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	events    config.EventsConfig
}

func NewScheduler(redis config.RedisConfig, events config.EventsConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		RedisOpt(redis),
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		events:    events,
	}
}

// RegisterJobs registers the periodic catalog audit. An empty cron spec
// leaves the scheduler without entries.
func (s *Scheduler) RegisterJobs() error {
	if s.events.AuditCron == "" {
		log.Info().Msg("catalog audit disabled")
		return nil
	}

	_, err := s.scheduler.Register(
		s.events.AuditCron,
		asynq.NewTask(shared.TypeCatalogAudit, nil),
		asynq.Queue(s.events.Queue),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", shared.TypeCatalogAudit, err)
	}

	log.Info().Str("cron", s.events.AuditCron).Msg("Registered catalog audit")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
