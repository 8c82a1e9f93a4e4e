// cmd/worker/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/pkg/container"
	"catalog-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(".", "./config")
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] failed to load")
	}
	logger.Init(cfg.App.Environment, cfg.Log.Level)

	// The worker always talks to Redis, whatever the API does
	cfg.Events.Enabled = true

	c, err := container.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("[Container] failed to initialize")
	}
	defer c.Cleanup()

	handlers := initializeHandlers(c)
	srv := setupAsynqServer(cfg, handlers)
	scheduler := setupScheduler(cfg)

	if err := startServices(c); err != nil {
		log.Fatal().Err(err).Msg("[Startup] health check failed")
	}

	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[Shutdown] Gracefully stopping")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("[Shutdown] Stopped")
}
