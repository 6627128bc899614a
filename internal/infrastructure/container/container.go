// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	dishapp "github.com/readytocook/v1/internal/application/dish"
	pantryapp "github.com/readytocook/v1/internal/application/pantry"
	"github.com/readytocook/v1/internal/application/recipes"
	userapp "github.com/readytocook/v1/internal/application/user"
	"github.com/readytocook/v1/internal/infrastructure/ai/openai"
	"github.com/readytocook/v1/internal/infrastructure/config"
	"github.com/readytocook/v1/internal/infrastructure/http/apiserver"
	"github.com/readytocook/v1/internal/infrastructure/monitoring"
	gormRepo "github.com/readytocook/v1/internal/infrastructure/persistence/gorm"
	"github.com/readytocook/v1/internal/infrastructure/persistence/postgres"
	redisCache "github.com/readytocook/v1/internal/infrastructure/persistence/redis"
	"github.com/readytocook/v1/internal/infrastructure/persistence/sqlite"
	"github.com/readytocook/v1/internal/infrastructure/security"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/internal/ports/outbound"
	"github.com/readytocook/v1/pkg/healthcheck"
	"github.com/readytocook/v1/pkg/logger"
)

// Module wires the whole application
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		switch cfg.Database.Driver {
		case "postgres":
			return postgres.Connect(cfg, log)
		case "sqlite":
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}
			db, err := sqlite.SetupDatabase(cfg.Database.Database, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup sqlite database: %w", err)
			}
			log.Info("connected to sqlite database",
				zap.String("path", cfg.Database.Database),
			)
			return db, nil
		default:
			return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
		}
	},
)

// CacheModule provides the Redis-backed cache
var CacheModule = fx.Provide(
	redisCache.NewClient,
	redisCache.NewCacheRepository,
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewIngredientRepository,
	gormRepo.NewPendingDishRepository,
	gormRepo.NewHistoryRepository,
	gormRepo.NewUserRepository,
	fx.Annotate(
		gormRepo.NewTxManager,
		fx.As(new(outbound.TxManager)),
	),
)

// ServiceModule provides the AI client and the application services
var ServiceModule = fx.Provide(
	security.NewTokenService,
	monitoring.NewMetricsCollector,

	func(cfg *config.Config, log *zap.Logger) outbound.AIService {
		return openai.NewClient(cfg.AI, log)
	},

	func(cfg *config.Config) *recipes.RateLimiter {
		return recipes.NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstSize,
			cfg.RateLimit.CleanupInterval,
		)
	},

	pantryapp.NewService,
	userapp.NewService,
	dishapp.NewService,

	func(
		ingredientRepo outbound.IngredientRepository,
		pendingRepo outbound.PendingDishRepository,
		aiService outbound.AIService,
		cache outbound.CacheRepository,
		limiter *recipes.RateLimiter,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.RecipeService {
		return recipes.NewService(ingredientRepo, pendingRepo, aiService, cache, limiter, cfg.AI, log)
	},
)

// HTTPModule provides the health check and the API server
var HTTPModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger, db *gorm.DB) *healthcheck.HealthCheck {
		hc := healthcheck.New(cfg.App.Version, log)
		hc.Register("database", healthcheck.NewDatabaseChecker(db))
		return hc
	},
	apiserver.NewServer,
)

// LifecycleModule starts and stops the server with the fx app
var LifecycleModule = fx.Invoke(registerLifecycleHooks)

func registerLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting readytocook",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down readytocook")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("failed to shutdown HTTP server", zap.Error(err))
			}

			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
