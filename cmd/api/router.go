package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// The session middleware runs once per request, before any resolver:
	// it derives the (optional) identity from the Authorization header.
	router.POST("/graphql",
		middleware.Session(c.JWTManager, c.UserService),
		gin.WrapH(c.GraphHandler),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["redis"] = err.Error()
		}

		ctx.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
