package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"primecasa-catalog/internal/middleware"
	"primecasa-catalog/pkg/cache"
	"primecasa-catalog/pkg/database"
	"primecasa-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupOperationalRoutes configures metrics, profiling and static assets
func (a *App) setupOperationalRoutes() {
	// Placeholder images served from the local static directory
	a.Router.Static("/static/placeholders", "./static/placeholders")

	// Expose pprof profiling endpoints (disable in production)
	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public catalog routes
		properties := api.Group("/properties")
		{
			properties.GET("", a.CatalogHandler.GetProperties)
			properties.GET("/featured", a.CatalogHandler.GetFeaturedProperties)
			properties.GET("/:id", a.CatalogHandler.GetPropertyByID)
		}

		// Live catalog view routes
		catalog := api.Group("/catalog")
		{
			catalog.GET("", a.CatalogHandler.GetCatalogView)
			catalog.PUT("/filters", a.CatalogHandler.UpdateCatalogFilters)
			catalog.PUT("/sort", a.CatalogHandler.UpdateCatalogSort)
			catalog.PUT("/page", a.CatalogHandler.UpdateCatalogPage)
			catalog.POST("/refresh", a.CatalogHandler.RefreshCatalog)
		}

		// Admin cache management, bearer-token protected
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(a.Config.JWT.Secret))
		{
			admin.POST("/cache/invalidate/property/:id", a.AdminHandler.InvalidateProperty)
			admin.POST("/cache/invalidate/agent/:id", a.AdminHandler.InvalidateAgent)
			admin.POST("/cache/clear", a.AdminHandler.ClearCaches)
		}
	}
}
