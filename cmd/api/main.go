package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/pkg/logger"
)

func main() {
	// .env is optional; production uses the real environment
	envErr := godotenv.Load()

	cfg, err := config.Load(".", "./config")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level)
	if envErr != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve(cfg)
}
