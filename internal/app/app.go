package app

import (
	"fmt"

	"caseshare_backend/internal/config"
	"caseshare_backend/internal/database"
	"caseshare_backend/internal/handlers"
	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/middleware"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/routes"
	"caseshare_backend/internal/services"
	"caseshare_backend/internal/storage"
	"caseshare_backend/internal/validator"
	"caseshare_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run loads configuration, connects the database, wires everything and
// starts the HTTP server. It does not return unless startup fails.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	db, err := database.Connect()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database connected")

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine: storage, repositories,
// services, the live connection hub and all routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	svcs := initializeServices(cfg, db, store, hub)

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(cfg, svcs, v)

	wsRouter := ws.NewRouter(svcs.NotificationService, hub)
	wsHandler := ws.NewHandler(hub, wsRouter)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(engine, appHandlers, wsHandler)
	return engine
}

func initializeServices(cfg *config.Config, db *gorm.DB, store storage.Storage, hub *ws.Hub) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// The hub delivers room events; every producing service routes its
	// pushes through the notification service.
	notificationService := services.NewNotificationService(notificationRepo, hub)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo),
		UserService:         services.NewUserService(userRepo),
		PostService:         services.NewPostService(postRepo),
		CommentService:      services.NewCommentService(commentRepo, postRepo, userRepo, notificationService),
		LikeService:         services.NewLikeService(likeRepo, postRepo, userRepo, notificationService),
		MessageService:      services.NewMessageService(messageRepo, userRepo, notificationService),
		MediaService:        services.NewMediaService(mediaRepo, postRepo, store, cfg.Upload.AllowedTypes),
		NotificationService: notificationService,
	}
}
