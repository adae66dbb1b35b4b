package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctors-portal/config"
	deliveryHttp "go-doctors-portal/internal/delivery/http"
	"go-doctors-portal/internal/delivery/http/handler"
	"go-doctors-portal/internal/delivery/http/middleware"
	"go-doctors-portal/internal/infrastructure/cache"
	"go-doctors-portal/internal/infrastructure/database"
	"go-doctors-portal/internal/infrastructure/metrics"
	"go-doctors-portal/internal/repository"
	"go-doctors-portal/internal/service"
	"go-doctors-portal/internal/usecase"
	"go-doctors-portal/pkg/jwt"
	"go-doctors-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	rateLimiter *middleware.RateLimiter
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, database.MigrateUp, log); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Redis is optional; without it the catalog is read from the database.
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = app.initializeServer()
	return app, nil
}

// NewLogger configures the logrus standard logger: JSON in production,
// text elsewhere.
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)
	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	cfg := app.Config
	db := app.DB
	log := app.Log

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	appMetrics := metrics.NewMetrics()

	// Repositories
	serviceRepo := repository.NewServiceRepository()
	bookingRepo := repository.NewBookingRepository()
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	catalogCache := service.NewCatalogCache(app.RedisClient, cfg.Cache.ServiceTTL, log)

	// Usecases
	catalogUsecase := usecase.NewCatalogUsecase(db, log, serviceRepo, bookingRepo, catalogCache)
	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, serviceRepo, appMetrics)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, jwtService, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	roleMiddleware := middleware.NewRoleMiddleware(userUsecase)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	router := deliveryHttp.NewRouter(
		log,
		appMetrics,
		catalogHandler,
		bookingHandler,
		userHandler,
		doctorHandler,
		auditLogHandler,
		authMiddleware,
		roleMiddleware,
		corsMiddleware,
		app.rateLimiter,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down gracefully.
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
	return nil
}

// Close releases the rate limiter, Redis and the database pool.
func (app *App) Close() {
	if app.rateLimiter != nil {
		app.rateLimiter.Stop()
	}

	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis: %v", err)
		}
	}

	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
