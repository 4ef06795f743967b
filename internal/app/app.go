package app

import (
	"fmt"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate приводит схему к актуальному состоянию.
// Уникальные индексы (email, (job_id, user_id)) создаются здесь же -
// это авторитетная гарантия, а не только прикладная проверка
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
	)
}

// SetupRouter собирает DI-граф и возвращает готовый *gin.Engine
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokenManager := auth.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TTLHours)*time.Hour,
	)

	serviceContainer := initializeServices(cfg, tokenManager)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, tokenManager)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokenManager *auth.TokenManager) *services.ServiceContainer {
	// Нотификатор: SMTP если сконфигурирован, иначе лог-заглушка
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:         cfg.Email.SMTPHost,
			Port:         cfg.Email.SMTPPort,
			Username:     cfg.Email.SMTPUsername,
			Password:     cfg.Email.SMTPPassword,
			FromEmail:    cfg.Email.FromEmail,
			FromName:     cfg.Email.FromName,
			UseTLS:       cfg.Email.UseTLS,
			ResetBaseURL: cfg.Email.ResetBaseURL,
		})
		logger.Info("Email provider: SMTP", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewLogProvider()
		logger.Warn("Email provider: log stub (SMTP is not configured)")
	}

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	companyRepo := repositories.NewCompanyRepository()

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(
		userRepo,
		emailProvider,
		tokenManager,
		time.Duration(cfg.PasswordReset.TTLMinutes)*time.Minute,
	)
	jobService := services.NewJobService(jobRepo, companyRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)

	return &services.ServiceContainer{
		AuthService:        authService,
		JobService:         jobService,
		ApplicationService: applicationService,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, sc.AuthService),
		JobHandler:         handlers.NewJobHandler(baseHandler, sc.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}
