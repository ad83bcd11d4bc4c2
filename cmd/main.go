package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell-api/internal/models"
	"inkwell-api/pkg/config"
	"inkwell-api/pkg/db"
	"inkwell-api/pkg/redis"
	"inkwell-api/router"

	"golang.org/x/sync/errgroup"
)

func main() {
	// Setup context cancelled on shutdown signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	log.Println("Loading configuration...")
	appConfig := config.LoadConfig()

	// Initialize database
	log.Println("Initializing database connection...")
	err := db.Initialize(appConfig.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Run migrations if enabled
	if appConfig.Database.MigrateOnBoot {
		log.Println("Running database migrations...")
		migrationCfg := db.NewMigrationConfig()

		if appConfig.IsDevelopment() {
			// Auto-migrate models instead of SQL migrations in development
			migrationCfg.AutoMigrateModels = true
			err = db.RunMigrations(migrationCfg,
				&models.User{},
				&models.Blog{})
		} else {
			// Use SQL migrations in production
			err = db.RunMigrations(migrationCfg)
		}

		if err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	}

	// Initialize Redis connection
	log.Println("Initializing Redis connection...")
	redis.InitDefault(appConfig.Redis)
	redisClient := redis.GetDefault()

	err = redisClient.Ping(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis successfully")

	// Get the database connection for the router
	database := db.GetDB()

	// Setup the Gin router
	log.Println("Setting up router...")
	ginEngine, err := router.SetupRouter(database, appConfig)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	// Create server with Gin handler
	srv := &http.Server{
		Addr:    appConfig.Host + ":" + appConfig.Port,
		Handler: ginEngine,
	}

	shutdownTimeout := time.Duration(appConfig.ShutdownTimeout) * time.Second

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server started on %s:%s", appConfig.Host, appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server error: %v", err)
	}

	// Perform other cleanup
	gracefulShutdown(shutdownTimeout)
}

// gracefulShutdown performs cleanup before exiting
func gracefulShutdown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Close database connections
	log.Println("Closing database connections...")
	if err := db.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}

	// Close Redis connections
	log.Println("Closing Redis connections...")
	redis.CloseAll()

	// Wait for context or proceed if timeout
	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			log.Println("Shutdown timed out, forcing exit")
		}
	case <-time.After(100 * time.Millisecond):
		// Small buffer to allow logging before exit
	}

	log.Println("Shutdown complete")
}
