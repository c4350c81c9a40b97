package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skilllink_backend/database"
	"skilllink_backend/internal/auth"
	"skilllink_backend/internal/config"
	"skilllink_backend/internal/email"
	"skilllink_backend/internal/handlers"
	"skilllink_backend/internal/logger"
	"skilllink_backend/internal/middleware"
	"skilllink_backend/internal/models"
	"skilllink_backend/internal/moderation"
	"skilllink_backend/internal/repositories"
	"skilllink_backend/internal/routes"
	"skilllink_backend/internal/services"
	"skilllink_backend/internal/storage"
	"skilllink_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	serviceContainer := initializeServices(cfg, store)
	appHandlers := initializeHandlers(cfg, serviceContainer, store)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.JWT.Secret)

	return ginRouter
}

func initializeServices(cfg *config.Config, store storage.Storage) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("Email delivery disabled, mails are dropped")
		emailService = email.NoopProvider{}
	}

	scanner, err := moderation.NewScanner(cfg.Moderation.WordsFile)
	if err != nil {
		logger.Fatal("Failed to load moderation word list", "error", err, "file", cfg.Moderation.WordsFile)
	}

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	serviceRepo := repositories.NewServiceRepository()
	availabilityRepo := repositories.NewAvailabilityRepository()
	requestRepo := repositories.NewRequestRepository()
	ratingRepo := repositories.NewRatingRepository()
	messageRepo := repositories.NewMessageRepository()
	membershipRepo := repositories.NewMembershipRepository()
	moderationRepo := repositories.NewModerationRepository()

	authService := services.NewAuthService(
		services.AuthConfig{
			JWTSecret:  cfg.JWT.Secret,
			TTL:        cfg.JWT.TTL,
			RefreshTTL: cfg.JWT.RefreshTTL,
		},
		userRepo,
		refreshTokenRepo,
		auth.NewGoogleVerifier(),
		emailService,
	)
	userService := services.NewUserService(userRepo, store)
	profileService := services.NewProfileService(profileRepo)
	serviceService := services.NewServiceService(serviceRepo, profileRepo, membershipRepo, moderationRepo, scanner, store)
	availabilityService := services.NewAvailabilityService(availabilityRepo, profileRepo)
	requestService := services.NewRequestService(requestRepo, serviceRepo, profileRepo, availabilityRepo)
	ratingService := services.NewRatingService(ratingRepo, requestRepo)
	chatService := services.NewChatService(messageRepo, requestRepo, store)
	membershipService := services.NewMembershipService(membershipRepo, profileRepo)
	moderationService := services.NewModerationService(moderationRepo, serviceRepo, emailService)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		ProfileService:      profileService,
		ServiceService:      serviceService,
		AvailabilityService: availabilityService,
		RequestService:      requestService,
		RatingService:       ratingService,
		ChatService:         chatService,
		MembershipService:   membershipService,
		ModerationService:   moderationService,
		EmailService:        emailService,
		Storage:             store,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer, store storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	limits := handlers.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.UserService, limits),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, container.ProfileService),
		ServiceHandler:      handlers.NewServiceHandler(baseHandler, container.ServiceService, limits),
		AvailabilityHandler: handlers.NewAvailabilityHandler(baseHandler, container.AvailabilityService),
		RequestHandler:      handlers.NewRequestHandler(baseHandler, container.RequestService),
		RatingHandler:       handlers.NewRatingHandler(baseHandler, container.RatingService),
		ChatHandler:         handlers.NewChatHandler(baseHandler, container.ChatService, limits),
		MembershipHandler:   handlers.NewMembershipHandler(baseHandler, container.MembershipService),
		ModerationHandler:   handlers.NewModerationHandler(baseHandler, container.ModerationService),
		FileHandler:         handlers.NewFileHandler(baseHandler, store),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin bootstraps the moderation account on an empty database.
// Controlled by FIRST_ADMIN_EMAIL and FIRST_ADMIN_PASSWORD.
func seedFirstAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("FIRST_ADMIN_EMAIL")
	adminPassword := os.Getenv("FIRST_ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var existing models.User
	result := tx.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:              adminEmail,
		PasswordHash:       hash,
		Name:               "Administrador",
		Role:               models.RoleAdmin,
		State:              models.UserStateActive,
		RegistrationMethod: models.RegistrationMethodLocal,
	}
	if err := tx.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return tx.Commit().Error
}
