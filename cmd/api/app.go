package main

import (
	"net/http"
	"os"
	"time"

	"primecasa-catalog/internal/handlers"
	"primecasa-catalog/internal/middleware"
	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/repositories"
	"primecasa-catalog/internal/resolvers"
	"primecasa-catalog/internal/services"
	"primecasa-catalog/internal/transformers"
	"primecasa-catalog/internal/validators"
	"primecasa-catalog/pkg/cache"
	"primecasa-catalog/pkg/config"
	"primecasa-catalog/pkg/database"
	"primecasa-catalog/pkg/logger"
	"primecasa-catalog/pkg/mediastore"
	"primecasa-catalog/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	CatalogHandler *handlers.CatalogHandler
	AdminHandler   *handlers.AdminHandler
	Controller     *services.CatalogController
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	propertyRepo := repositories.NewPropertyRepository()
	agentRepo := repositories.NewAgentRepository()
	listCache := repositories.NewListingCache(cache.RedisClient)

	// resolvers with their process-wide caches
	storeClient := mediastore.NewClient(a.Config.Storage.BaseURL, a.Config.Storage.Bucket, a.Config.Storage.PublicURL)
	imageResolver := resolvers.NewImageResolver(cache.NewStore[[]string](), storeClient)
	agentResolver := resolvers.NewAgentResolver(cache.NewStore[models.AgentProfile](), agentRepo)

	// transformers
	addrTrans := transformers.NewAddressTransformer()
	propTrans := transformers.NewPropertyTransformer(imageResolver, agentResolver, addrTrans)

	// validators
	criteriaValidator := validators.NewCriteriaValidator()

	// services
	catalogService := services.NewCatalogService(propertyRepo, listCache, propTrans, a.Config.Catalog.PageSize)
	a.Controller = services.NewCatalogController(catalogService, criteriaValidator, time.Duration(a.Config.Catalog.DebounceMS)*time.Millisecond)

	// handlers
	a.CatalogHandler = handlers.NewCatalogHandler(catalogService, a.Controller, criteriaValidator)
	a.AdminHandler = handlers.NewAdminHandler(imageResolver, agentResolver, listCache)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.Controller != nil {
		a.Controller.Stop()
	}
	database.CloseDB()
	cache.CloseRedis()
}
