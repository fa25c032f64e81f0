package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tasktrack/pkg/config"
)

// NewPostgresConnection opens a gorm connection to the configured database.
// The postgres driver translates constraint violations into gorm errors
// (gorm.ErrDuplicatedKey), which the repositories rely on.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}
