package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			status := http.StatusOK
			dbStatus := "ok"
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				dbStatus = "down"
				status = http.StatusServiceUnavailable
			}

			cacheStatus := "ok"
			if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
				cacheStatus = "down"
				status = http.StatusServiceUnavailable
			}

			ctx.JSON(status, gin.H{
				"name":     c.Config.App.Name,
				"version":  c.Config.App.Version,
				"database": dbStatus,
				"cache":    cacheStatus,
			})
		})

		// Public routes
		api.POST("/regis", c.UserHandler.Register)
		api.POST("/login", c.UserHandler.Login)
		api.GET("/get", c.BookHandler.GetAll)
		api.GET("/getBook", c.BookHandler.GetByID)

		// Protected routes, yêu cầu Bearer token
		auth := api.Group("")
		auth.Use(middleware.Auth(c.JWTManager))
		{
			auth.POST("/add", c.BookHandler.Create)
			auth.PUT("/edit", c.BookHandler.Update)
			auth.DELETE("/delete", c.BookHandler.Delete)
			auth.GET("/export", c.BookHandler.Export)
			auth.POST("/upload", c.UploadHandler.Upload)
		}
	}

	return router
}
