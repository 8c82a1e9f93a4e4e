package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		c.Metrics.Handler(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

// writeGuard protects mutating routes when AUTH_ENABLED is set
func writeGuard(c *container.Container) []gin.HandlerFunc {
	if !c.Config.JWT.AuthEnabled {
		return nil
	}
	return []gin.HandlerFunc{middleware.RequireWriter(c.JWTManager)}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	guard := writeGuard(c)

	author := v1.Group("/authors")
	{
		author.POST("", append(guard, c.AuthorHandler.Create)...)
		author.PATCH("/:id", append(guard, c.AuthorHandler.Patch)...)
		author.GET("/:id", c.AuthorHandler.GetByID)
		author.GET("/:id/books", c.AuthorHandler.GetWithBooks)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	guard := writeGuard(c)

	book := v1.Group("/books")
	{
		book.POST("", append(guard, c.BookHandler.CreateBook)...)
		book.PATCH("/:id", append(guard, c.BookHandler.PatchBook)...)
		book.GET("/:id", c.BookHandler.GetBookByID)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		components := gin.H{}

		for name, err := range c.HealthCheck(ctx.Request.Context()) {
			if err != nil {
				status = http.StatusServiceUnavailable
				components[name] = gin.H{"status": "unhealthy", "error": err.Error()}
				continue
			}
			components[name] = gin.H{"status": "healthy"}
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "unhealthy"
		}

		ctx.JSON(status, gin.H{
			"status":     overall,
			"service":    c.Config.App.Name,
			"version":    c.Config.App.Version,
			"timestamp":  time.Now().UTC(),
			"components": components,
		})
	}
}
