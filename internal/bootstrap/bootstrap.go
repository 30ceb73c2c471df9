package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mathspoint/mathspoint/internal/app/controllers"
	appMigrations "github.com/mathspoint/mathspoint/internal/app/migrations"
	appRepos "github.com/mathspoint/mathspoint/internal/app/repositories"
	appRoutes "github.com/mathspoint/mathspoint/internal/app/routes"
	appServices "github.com/mathspoint/mathspoint/internal/app/services"
	"github.com/mathspoint/mathspoint/internal/config"
	"github.com/mathspoint/mathspoint/internal/db"
	appMiddleware "github.com/mathspoint/mathspoint/internal/middleware"
	pkgAuth "github.com/mathspoint/mathspoint/internal/pkg/auth"
	"github.com/mathspoint/mathspoint/internal/pkg/email"
	"github.com/mathspoint/mathspoint/internal/pkg/filestorage"
	"github.com/mathspoint/mathspoint/internal/pkg/helpers"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
	"github.com/mathspoint/mathspoint/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services               *appServices.Services
	PortalController       *appControllers.PortalController
	AnnouncementController *appControllers.AnnouncementController
	AssignmentController   *appControllers.AssignmentController
	SubmissionController   *appControllers.SubmissionController
	ContactController      *appControllers.ContactController
	SessionController      *appControllers.SessionController
	PDFController          *appControllers.PDFController
	PreferenceController   *appControllers.PreferenceController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Gate                   *pkgAuth.Gate
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.PublicURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Gate = pkgAuth.NewGate(pkgAuth.GateConfig{
		AdminPassword:  cfg.Portal.AdminPassword,
		ClassPasswords: cfg.ClassPasswords(),
	})

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: helpers.ParseDuration(cfg.JWT.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		ToEmail:   cfg.SMTP.ToEmail,
	}, lgr)

	deps.Services = appServices.NewServices(deps.Repos, deps.Gate, deps.JWTService, deps.FileStorage, emailService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.PortalController = appControllers.NewPortalController(deps.Services.PortalService, deps.Services.SessionService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.Services.AnnouncementService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.Services.AssignmentService, deps.Services.SessionService)
	deps.SubmissionController = appControllers.NewSubmissionController(deps.Services.SubmissionService, deps.Services.SessionService)
	deps.ContactController = appControllers.NewContactController(deps.Services.ContactService)
	deps.SessionController = appControllers.NewSessionController(deps.Services.SessionService)
	deps.PDFController = appControllers.NewPDFController(deps.Services.PDFService)
	deps.PreferenceController = appControllers.NewPreferenceController(deps.Services.PreferenceService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.PortalController,
		deps.AnnouncementController,
		deps.AssignmentController,
		deps.SubmissionController,
		deps.ContactController,
		deps.SessionController,
		deps.PDFController,
		deps.PreferenceController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
