package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lettora/lettora-backend/internal/config"
	"github.com/lettora/lettora-backend/internal/delivery/http"
	"github.com/lettora/lettora-backend/internal/delivery/http/handler"
	"github.com/lettora/lettora-backend/internal/delivery/http/middleware"
	"github.com/lettora/lettora-backend/internal/infrastructure/database"
	"github.com/lettora/lettora-backend/internal/infrastructure/logger"
	"github.com/lettora/lettora-backend/internal/infrastructure/server"
	"github.com/lettora/lettora-backend/internal/matching"
	"github.com/lettora/lettora-backend/internal/repository/postgres"
	"github.com/lettora/lettora-backend/internal/repository/rediscache"
	"github.com/lettora/lettora-backend/internal/usecase/match"
	"github.com/lettora/lettora-backend/internal/usecase/preference"
	"github.com/lettora/lettora-backend/internal/usecase/property"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Server.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	propertyRepo := postgres.NewPropertyRepository(db)
	preferenceRepo := postgres.NewPreferenceRepository(db)
	catalog := rediscache.NewPropertyCatalog(propertyRepo, redisClient, cfg.Matching.CatalogCacheTTL, log.Named("catalog_cache"))

	// Initialize matching engine
	engine := matching.NewEngine(cfg.Matching.Weights)

	// Initialize use cases
	matchUseCase := match.NewUseCase(preferenceRepo, catalog, engine, log.Named("match"))
	preferenceUseCase := preference.NewUseCase(preferenceRepo, log.Named("preference"))
	propertyUseCase := property.NewUseCase(catalog, log.Named("property"))

	// Initialize handlers
	matchHandler := handler.NewMatchHandler(matchUseCase)
	preferenceHandler := handler.NewPreferenceHandler(preferenceUseCase)
	propertyHandler := handler.NewPropertyHandler(propertyUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)

	// Initialize router
	router := http.NewRouter(
		matchHandler,
		preferenceHandler,
		propertyHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log.Named("server"))

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	_ = c.Logger.Sync()
	return nil
}
