// Package postgres provides PostgreSQL database connection and management
package postgres

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/readytocook/v1/internal/infrastructure/config"
	gormModels "github.com/readytocook/v1/internal/infrastructure/persistence/gorm"
)

// Connect opens a pooled PostgreSQL connection and runs migrations when
// configured to.
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.App.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		err = db.AutoMigrate(
			&gormModels.UserModel{},
			&gormModels.IngredientModel{},
			&gormModels.PendingDishModel{},
			&gormModels.HistoryModel{},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	log.Info("connected to postgres",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	return db, nil
}
