package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-appointment-service/config"
	deliveryHttp "hospital-appointment-service/internal/delivery/http"
	"hospital-appointment-service/internal/delivery/http/handler"
	"hospital-appointment-service/internal/delivery/http/middleware"
	"hospital-appointment-service/internal/infrastructure/cache"
	"hospital-appointment-service/internal/repository"
	"hospital-appointment-service/internal/service"
	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/jwt"
	"hospital-appointment-service/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	Events      *service.EventDispatcher
	Scheduler   *service.Scheduler
	Kafka       *service.KafkaEventSink
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	app.Log = setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log.Info("Configuration loaded successfully")

	if err := app.initialize(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

func (app *App) initialize() error {
	cfg := app.Config
	log := app.Log
	ctx := context.Background()

	// Entity store
	store, db, err := openStore(cfg.Store, cfg.DB, log)
	if err != nil {
		return err
	}
	app.DB = db

	if cfg.Seed.DefaultUsers {
		if err := seedDefaultUsers(ctx, store, log); err != nil {
			return fmt.Errorf("failed to seed default users: %w", err)
		}
	}

	// Redis (optional)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := service.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Event sinks
	events, err := app.buildEventSink(metrics)
	if err != nil {
		return err
	}

	hospital, err := usecase.NewHospitalUsecase(ctx, log, store, events)
	if err != nil {
		return fmt.Errorf("failed to load entities: %w", err)
	}
	metrics.SetAppointmentCounts(hospital.AppointmentStatusCounts())

	// Token store
	var tokenStore service.TokenStore
	memoryTokens := service.NewMemoryTokenStore()
	if app.RedisClient != nil {
		tokenStore = service.NewRedisTokenStore(app.RedisClient, log)
	} else {
		tokenStore = memoryTokens
	}

	// Periodic jobs
	app.Scheduler = service.NewScheduler(log)
	if cfg.Jobs.TokenSweep != "" && app.RedisClient == nil {
		if err := app.Scheduler.Every(cfg.Jobs.TokenSweep, "token-sweep", func() {
			if n := memoryTokens.Sweep(); n > 0 {
				log.Infof("Swept %d expired tokens", n)
			}
		}); err != nil {
			return fmt.Errorf("failed to schedule token sweep: %w", err)
		}
	}
	if cfg.Jobs.AppointmentMetrics != "" {
		if err := app.Scheduler.Every(cfg.Jobs.AppointmentMetrics, "appointment-metrics", func() {
			metrics.SetAppointmentCounts(hospital.AppointmentStatusCounts())
		}); err != nil {
			return fmt.Errorf("failed to schedule appointment metrics: %w", err)
		}
	}

	app.Server = initializeServer(cfg, log, db, hospital, tokenStore, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	hospital usecase.HospitalUsecase,
	tokenStore service.TokenStore,
	metricsHandler http.Handler,
) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, hospital, jwtService, tokenStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(hospital, customValidator)
	doctorHandler := handler.NewDoctorHandler(hospital, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(hospital, customValidator)

	var activityEventHandler *handler.ActivityEventHandler
	if db != nil {
		eventUsecase := usecase.NewActivityEventUsecase(log, repository.NewActivityEventRepository(db))
		activityEventHandler = handler.NewActivityEventHandler(eventUsecase)
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		doctorHandler,
		appointmentHandler,
		activityEventHandler,
		metricsHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	app.Scheduler.Start()

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, store: %s", app.Config.App.Env, app.Config.Store.Driver)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	if app.Scheduler != nil {
		app.Scheduler.Stop(ctx)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close drains pending events, then closes kafka, database and redis.
func (app *App) Close() {
	if app.Events != nil {
		app.Events.Stop()
	}

	if app.Kafka != nil {
		if err := app.Kafka.Close(); err != nil {
			app.Log.Warnf("Failed to close kafka writer: %+v", err)
		}
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
