package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-backend/config"
	deliveryHttp "clinic-backend/internal/delivery/http"
	"clinic-backend/internal/delivery/http/handler"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/infrastructure/cache"
	"clinic-backend/internal/infrastructure/database"
	"clinic-backend/internal/infrastructure/mail"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/service"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/jwt"
	"clinic-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply pending schema migrations
	if err := database.RunMigrations(cfg.DB, "db/migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger and mailer
	log := logrus.StandardLogger()
	mailer := mail.NewMailer(cfg.SMTP, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	otpRepo := repository.NewOTPRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	specRepo := repository.NewSpecializationRepository()
	serviceRepo := repository.NewServiceRepository()
	clinicRepo := repository.NewClinicRepository()
	scheduleRepo := repository.NewScheduleRepository()
	slotRepo := repository.NewTimeSlotRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reviewRepo := repository.NewReviewRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	recordRepo := repository.NewMedicalRecordRepository()
	paymentRepo := repository.NewPaymentRepository()
	notificationRepo := repository.NewNotificationRepository()
	auditRepo := repository.NewAuditLogRepository()
	sectionRepo := repository.NewSectionRepository()
	settingRepo := repository.NewSettingRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditRepo)
	notificationService := service.NewNotificationService(log, notificationRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientRepo, doctorRepo, specRepo, otpRepo, jwtService, redisClient, mailer, auditService, cfg.OTP)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, userRepo, specRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	directoryUsecase := usecase.NewDirectoryUsecase(db, log, specRepo, serviceRepo, clinicRepo, doctorRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleRepo, doctorRepo, auditService)
	slotUsecase := usecase.NewTimeSlotUsecase(db, log, slotRepo, scheduleRepo, doctorRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, slotRepo, doctorRepo, patientRepo, auditService, notificationService)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, doctorRepo, patientRepo, auditService)
	medicalUsecase := usecase.NewMedicalUsecase(db, log, prescriptionRepo, recordRepo, patientRepo, doctorRepo, auditService, notificationService)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, appointmentRepo, auditService)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo)
	systemUsecase := usecase.NewSystemUsecase(db, log, sectionRepo, settingRepo, auditRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, slotUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	medicalHandler := handler.NewMedicalHandler(medicalUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	systemHandler := handler.NewSystemHandler(systemUsecase, customValidator)
	publicHandler := handler.NewPublicHandler(doctorUsecase, slotUsecase, reviewUsecase, directoryUsecase, systemUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	actorMiddleware := middleware.NewActorMiddleware(db, log, doctorRepo, patientRepo)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		patientHandler,
		directoryHandler,
		scheduleHandler,
		appointmentHandler,
		reviewHandler,
		medicalHandler,
		paymentHandler,
		notificationHandler,
		systemHandler,
		publicHandler,
		authMiddleware,
		actorMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
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
