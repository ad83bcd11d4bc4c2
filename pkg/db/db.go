package db

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	config "inkwell-api/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// DB is the global database connection
	DB *gorm.DB

	// once ensures the database is initialized only once
	once sync.Once

	// dbConfig stores the database configuration
	dbConfig *config.DatabaseConfig
)

// Initialize sets up the database connection with connection pooling
func Initialize(cfg *config.DatabaseConfig) error {
	var err error

	once.Do(func() {
		dbConfig = cfg
		DB, err = connect(cfg)
	})

	return err
}

// connect creates a new database connection with optimized settings
func connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info
	if cfg.MigrateOnBoot {
		// Use higher log level during migrations
		logLevel = logger.Warn
	}

	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	dsn := cfg.GetDatabaseURL()

	gormConfig := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            cfg.PrepareCached,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.PoolMinSize)
	sqlDB.SetMaxOpenConns(cfg.PoolMaxSize)
	sqlDB.SetConnMaxIdleTime(cfg.MaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.MaxLifetime)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	err = sqlDB.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Connected to database %s on %s:%s (pool: %d-%d)",
		cfg.Name, cfg.Host, cfg.Port, cfg.PoolMinSize, cfg.PoolMaxSize)

	return db, nil
}

// GetDB returns the global database connection
func GetDB() *gorm.DB {
	if DB == nil {
		panic("Database not initialized. Call Initialize first")
	}
	return DB
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}
