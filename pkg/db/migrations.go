package db

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationConfig holds configuration for database migrations
type MigrationConfig struct {
	// Path to migration files
	MigrationsPath string

	// Whether to auto-migrate GORM models (alternative to SQL migrations)
	AutoMigrateModels bool

	// Target version (0 means latest)
	TargetVersion uint
}

// NewMigrationConfig creates a new migration configuration with default values
func NewMigrationConfig() *MigrationConfig {
	return &MigrationConfig{
		MigrationsPath:    "migrations",
		AutoMigrateModels: false,
		TargetVersion:     0, // Latest
	}
}

// RunMigrations runs database migrations
func RunMigrations(cfg *MigrationConfig, models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	// GORM auto-migration (development/simple cases)
	if cfg.AutoMigrateModels && len(models) > 0 {
		log.Println("Running GORM auto-migrations...")

		start := time.Now()
		err := DB.AutoMigrate(models...)
		if err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}

		log.Printf("Auto-migration completed in %v", time.Since(start))
		return nil
	}

	// Use golang-migrate for production-ready migrations
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.MigrationsPath),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if cfg.TargetVersion > 0 {
		err = m.Migrate(cfg.TargetVersion)
	} else {
		err = m.Up()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, verr := m.Version()
	if verr == nil {
		log.Printf("Database schema at version %d (dirty: %v)", version, dirty)
	}

	return nil
}
