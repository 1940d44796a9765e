package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hospital-turn-system/config"
	"hospital-turn-system/internal/delivery/console"
	"hospital-turn-system/internal/infrastructure/database"
	"hospital-turn-system/internal/repository"
	"hospital-turn-system/internal/service"
	"hospital-turn-system/internal/usecase"
	"hospital-turn-system/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	DB      *gorm.DB
	Menu    *console.Menu
	TurnLog *service.TurnLogService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.App)
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Schema failures at startup are fatal by contract.
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database schema ready")

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	turnLog := service.NewTurnLogService(db, log, appointmentRepo, cfg.App.TurnLogPath)
	turnLog.Start()
	app.TurnLog = turnLog

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, customValidator, userRepo, auditService)
	registrationUsecase := usecase.NewRegistrationUsecase(db, log, customValidator, userRepo, doctorRepo, patientRepo, auditService)
	assignmentUsecase := usecase.NewAssignmentUsecase(db, log, doctorRepo, patientRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, customValidator, appointmentRepo, doctorRepo, patientRepo, turnLog, auditService)

	// Initialize the terminal surface
	app.Menu = console.NewMenu(log, cfg.App, authUsecase, registrationUsecase, assignmentUsecase, appointmentUsecase)

	return app, nil
}

// setupLogger configures the logrus logger. Logs go to stderr so they do not
// interleave with the menu on stdout.
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// Run drives the menu until the operator exits or the process is signalled.
func (app *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Menu.Run(ctx)
	app.Close()
}

// Close drains the turn log writer and closes the database connection.
func (app *App) Close() {
	if app.TurnLog != nil {
		app.TurnLog.Stop()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	logrus.Info("Shutdown complete")
}
