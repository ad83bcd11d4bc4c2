package router

import (
	"errors"
	"net/http"
	"os"
	"time"

	authAPI "inkwell-api/api/v1/auth"
	blogAPI "inkwell-api/api/v1/blog"
	csrfAPI "inkwell-api/api/v1/csrf"
	usersAPI "inkwell-api/api/v1/users"
	internalAuth "inkwell-api/internal/auth"
	internalBlog "inkwell-api/internal/blog"
	"inkwell-api/internal/jwt"
	log "inkwell-api/internal/logger"
	"inkwell-api/internal/mail"
	"inkwell-api/internal/middleware"
	"inkwell-api/internal/ratelimit"
	internalUser "inkwell-api/internal/user"
	"inkwell-api/pkg/config"
	"inkwell-api/pkg/db"
	"inkwell-api/pkg/redis"

	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Package-level services to avoid recreation
var (
	jwtService   *jwt.Service
	authService  *internalAuth.Service
	blogService  *internalBlog.Service
	logger       *logrus.Logger
	customLogger *log.Logger
)

// InitServices initializes all required services
func InitServices(database *gorm.DB, redisClient *redis.Client, cfg *config.AppConfig) error {
	// Initialize logger with Sentry hook
	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Setup Sentry hook for logrus if DSN is provided
	sentryDSN := os.Getenv("SENTRY_DSN")
	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         sentryDSN,
			Environment: cfg.Environment,
			Release:     os.Getenv("APP_VERSION"),
		})
		if err != nil {
			return errors.New("failed to initialize Sentry: " + err.Error())
		}

		// Add Sentry hook to logrus
		levels := []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel}
		hook, err := sentrylogrus.New(levels, sentry.ClientOptions{
			Dsn: sentryDSN,
		})
		if err != nil {
			logger.WithError(err).Error("Failed to initialize Sentry hook")
		} else {
			logger.AddHook(hook)
			logger.Info("Sentry integration initialized successfully")
		}
	}

	// Initialize custom logger wrapper
	customLogger = log.New(logger)

	// Initialize JWT service
	var err error
	jwtService, err = jwt.NewService(
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenIssuer,
		cfg.Auth.TokenExpiry,
	)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize JWT service")
		return err
	}

	// Initialize mailer and OTP rate limiter
	mailer := mail.New(cfg.Mail)
	limiter := ratelimit.New(redisClient)

	// Initialize user repository and auth service
	userRepo := internalUser.NewRepository(database)
	authService = internalAuth.NewService(userRepo, mailer, jwtService, limiter, customLogger)

	// Initialize blog repository and service
	blogRepo := internalBlog.NewRepository(database)
	blogService = internalBlog.NewService(blogRepo, customLogger)

	logger.Info("All services initialized successfully")
	return nil
}

// CSRFMiddleware creates a middleware for CSRF protection
func CSRFMiddleware(secret string, secure bool, domain string) gin.HandlerFunc {
	csrfMiddleware := csrf.Protect(
		[]byte(secret),
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.Path("/"),
		csrf.CookieName("csrfToken"),
		csrf.MaxAge(3600), // 1 hour
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Domain(domain),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, _ := gin.CreateTestContext(w)
			c.Request = r

			// Log CSRF error for monitoring
			logger.WithFields(logrus.Fields{
				"remoteIP":  c.ClientIP(),
				"path":      r.URL.Path,
				"method":    r.Method,
				"userAgent": r.UserAgent(),
			}).Error("CSRF token mismatch")

			c.IndentedJSON(http.StatusForbidden, gin.H{"error": "CSRF token mismatch"})
			c.Abort()
		})),
	)

	return func(c *gin.Context) {
		csrfMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)
		c.Abort()
	}
}

// SetupEngine creates a new Gin engine with default middleware
func SetupEngine() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	return r
}

// SetupCsrfRoutes configures CSRF-related routes
func SetupCsrfRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	csrfHandler := csrfAPI.NewHandler(customLogger)

	csrfAPI.RegisterPublicRoutes(v1, csrfHandler)
}

// SetupAuthRoutes configures auth-related routes
func SetupAuthRoutes(r *gin.Engine, cfg *config.AppConfig) {
	v1 := r.Group("/api/v1")

	authHandler := authAPI.NewHandler(authService, cfg, customLogger)

	// Register public auth routes
	authAPI.RegisterPublicRoutes(v1, authHandler)

	// Create authenticated route group
	authGroup := v1.Group("/auth")
	authGroup.Use(middleware.SessionAuth(jwtService, cfg.Auth.CookieName))
	authAPI.RegisterProtectedRoutes(authGroup, authHandler)
}

// SetupUsersRoutes configures user profile routes
func SetupUsersRoutes(r *gin.Engine, cfg *config.AppConfig) {
	v1 := r.Group("/api/v1")

	userHandler := usersAPI.NewHandler(authService, customLogger)

	userGroup := v1.Group("")
	userGroup.Use(middleware.SessionAuth(jwtService, cfg.Auth.CookieName))
	usersAPI.RegisterRoutes(userGroup, userHandler)
}

// SetupBlogRoutes configures blog routes
func SetupBlogRoutes(r *gin.Engine, cfg *config.AppConfig) {
	v1 := r.Group("/api/v1")

	blogHandler := blogAPI.NewHandler(blogService, customLogger)

	// Public read routes
	blogAPI.RegisterPublicRoutes(v1, blogHandler)

	// Authenticated write routes
	blogGroup := v1.Group("")
	blogGroup.Use(middleware.SessionAuth(jwtService, cfg.Auth.CookieName))
	blogAPI.RegisterProtectedRoutes(blogGroup, blogHandler)
}

// SetupCSRFProtection configures CSRF protection
func SetupCSRFProtection(r *gin.Engine, cfg *config.AppConfig) error {
	if !cfg.Auth.CSRFEnabled {
		return nil
	}

	if cfg.Auth.CSRFSecret == "" {
		logger.Error("CSRF_SECRET environment variable is required")
		return errors.New("CSRF_SECRET environment variable is required")
	}

	domain := cfg.Auth.CookieDomain
	if domain == "" {
		domain = "localhost"
	}

	r.Use(CSRFMiddleware(cfg.Auth.CSRFSecret, cfg.IsProduction(), domain))

	return nil
}

// SetupCORS configures CORS settings. Credentials are allowed so the
// session cookie flows on cross-origin requests from the frontend.
func SetupCORS(r *gin.Engine) {
	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:5173"
	}

	r.SetTrustedProxies(nil)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{frontendOrigin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-TOKEN", "X-Request-ID"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 24 * time.Hour

	r.Use(cors.New(corsConfig))
}

// SetupRouter creates and configures the main router with all routes
func SetupRouter(database *gorm.DB, cfg *config.AppConfig) (*gin.Engine, error) {
	// Set global database reference
	db.DB = database

	// Get Redis client
	redisClient := redis.GetDefault()

	// Initialize all services
	if err := InitServices(database, redisClient, cfg); err != nil {
		// This error is already logged in InitServices
		return nil, err
	}

	// Create and configure Gin router
	r := SetupEngine()

	// Setup CORS
	SetupCORS(r)

	// Setup CSRF protection
	if err := SetupCSRFProtection(r, cfg); err != nil {
		logger.WithError(err).Error("Failed to setup CSRF protection")
		return nil, err
	}

	// Configure routes
	SetupCsrfRoutes(r)
	SetupAuthRoutes(r, cfg)
	SetupUsersRoutes(r, cfg)
	SetupBlogRoutes(r, cfg)

	logger.Info("Router setup completed successfully")
	return r, nil
}
