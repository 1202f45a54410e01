package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/merchware/shipcast/config"
	"github.com/merchware/shipcast/internal/api"
	"github.com/merchware/shipcast/internal/cache"
	"github.com/merchware/shipcast/internal/match"
	"github.com/merchware/shipcast/internal/service"
	"github.com/merchware/shipcast/internal/storage"
	"github.com/merchware/shipcast/internal/validate"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Connects to Redis when REDIS_ADDR is set; otherwise uses the
//     in-process cache.
//   - Compiles the CEL environment shared by rule validation and matching.
//   - Initializes the repository, service, and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Compile the CEL environment once; the matcher caches compiled programs
	// per rule and both services share it.
	matcher, err := match.NewMatcher()
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to build matcher: %w", err)
	}

	validator, err := validate.New(matcher)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to build validator: %w", err)
	}

	// Pick the cache backend. Redis keeps the configured-shop flag shared
	// between instances; without it each instance caches locally.
	shopCache, redisClose, err := initCache(cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	// Initialize repository layer (responsible for DB access)
	repo := storage.NewRepository(db)

	// Initialize service layer (business logic)
	estimates := service.NewEstimateService(repo, shopCache, matcher)
	configs := service.NewConfigService(repo, shopCache, validator, matcher)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(estimates, configs)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		if redisClose != nil {
			_ = redisClose()
		}
		_ = db.Close()
	}

	return router, cleanup, nil
}

// initCache returns the configured ShopCache and, for Redis, a closer.
func initCache(cfg config.Config) (cache.ShopCache, func() error, error) {
	if cfg.Redis.Addr == "" {
		return cache.NewMemoryCache(cfg.Cache.TTL), nil, nil
	}
	client, err := redisOpener(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisCache(client, cfg.Cache.TTL), client.Close, nil
}
