package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/infrastructure/queue"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/store"
	"catalog-backend/pkg/jwt"

	"catalog-backend/internal/domains/author"
	authorHandler "catalog-backend/internal/domains/author/handler"
	authorService "catalog-backend/internal/domains/author/service"
	bookHandler "catalog-backend/internal/domains/book/handler"
	bookJob "catalog-backend/internal/domains/book/job"
	bookService "catalog-backend/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph shared by cmd/api and
// cmd/worker. Every field is a singleton for the process lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	Store      store.Store
	JWTManager *jwt.Manager
	Registry   *prometheus.Registry
	Metrics    *middleware.Metrics

	// nil unless events are enabled
	Broker      *queue.Broker
	AsynqClient *asynq.Client

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService author.Service
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.Handler
}

// NewContainer builds the graph in dependency order:
// store, events, services, handlers.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI container")

	c := &Container{
		Config:     cfg,
		JWTManager: jwt.NewManager(cfg.JWT.Secret),
		Registry:   prometheus.NewRegistry(),
	}

	// ========================================
	// STEP 1: STORE
	// ========================================
	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
	}
	c.Store = st
	log.Info().Str("driver", cfg.Database.Driver).Msg("Store ready")

	// ========================================
	// STEP 2: METRICS
	// ========================================
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = middleware.NewMetrics(c.Registry)
	if pg, ok := st.(*store.PostgresStore); ok {
		if err := database.RegisterPoolMetrics(c.Registry, pg.DB()); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to register pool metrics: %w", err)
		}
	}

	// ========================================
	// STEP 3: EVENTS
	// ========================================
	var bookOpts []bookService.Option
	if cfg.Events.Enabled {
		c.Broker = queue.NewBroker(cfg.Redis)
		if err := c.Broker.Connect(ctx); err != nil {
			c.Cleanup()
			return nil, err
		}
		c.AsynqClient = queue.NewClient(cfg.Redis)
		bookOpts = append(bookOpts, bookService.WithEventPublisher(bookJob.NewPublisher(c.AsynqClient, cfg.Events.Queue)))
		log.Info().Str("queue", cfg.Events.Queue).Msg("Publication events enabled")
	}

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	c.AuthorService = authorService.NewAuthorService(st)
	c.BookService = bookService.NewBookService(st, bookOpts...)

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)

	log.Info().Msg("DI container initialized")
	return c, nil
}

// HealthCheck pings the store and, when events are enabled, Redis
func (c *Container) HealthCheck(ctx context.Context) map[string]error {
	checks := map[string]error{
		"database": c.Store.Ping(ctx),
	}
	if c.Broker != nil {
		checks["redis"] = c.Broker.HealthCheck(ctx)
	}
	return checks
}

// Cleanup releases everything NewContainer opened
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up resources")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close asynq client")
		}
	}
	if c.Broker != nil {
		if err := c.Broker.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis")
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}
}
