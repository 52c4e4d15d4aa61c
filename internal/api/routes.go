package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/shotbook/backend/internal/api/handlers"
	"github.com/shotbook/backend/internal/config"
	"github.com/shotbook/backend/internal/diagram"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	renderer := diagram.NewRenderer()

	// No-cache headers in development so diagram tweaks show up immediately
	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] No-cache headers enabled for all routes")
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		// Ad hoc diagram rendering
		v1.POST("/diagram", handlers.RenderDiagram(rdb, cfg, renderer))

		// Saved layouts
		layouts := v1.Group("/layouts")
		{
			layouts.POST("", handlers.SaveLayout(db))
			layouts.GET("", handlers.ListLayouts(db))
			layouts.GET("/:id", handlers.GetLayout(db))
			layouts.DELETE("/:id", handlers.DeleteLayout(db))
			layouts.GET("/:id/diagram", handlers.RenderLayout(db, rdb, cfg, renderer))
		}
	}
}
