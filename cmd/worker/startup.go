// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/pkg/container"
)

// startServices runs the startup checks and serves /health and /ready
func startServices(c *container.Container) error {
	log.Info().Msg("Catalog worker starting")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for name, err := range c.HealthCheck(ctx) {
		if err != nil {
			return fmt.Errorf("%s failed: %w", name, err)
		}
		log.Info().Str("check", name).Msg("OK")
	}

	go startHealthCheckServer(c)
	return nil
}

func startHealthCheckServer(c *container.Container) {
	addr := ":" + c.Config.Events.HealthPort
	log.Info().Str("addr", addr).Msg("[Health] Starting health check server")

	if err := http.ListenAndServe(addr, healthRouter(c)); err != nil {
		log.Error().Err(err).Msg("[Health] failed to start")
	}
}

func healthRouter(c *container.Container) *gin.Engine {
	r := gin.New()
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "UP", "service": "catalog-worker"})
	})
	r.GET("/ready", func(ctx *gin.Context) {
		for name, err := range c.HealthCheck(ctx.Request.Context()) {
			if err != nil {
				ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "NOT_READY", "failed": name})
				return
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "READY"})
	})
	return r
}
