package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhub/internal/config"
	"taskhub/internal/database"
	"taskhub/internal/handler"
	"taskhub/internal/middleware"
	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to access DB handle: %w", err)
	}
	if err := database.Migrate(sqlDB); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Schema migrations applied")

	// Blob storage is optional; uploads 503 when unconfigured
	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("❌ failed to init blob storage: %w", err)
	}
	if store == nil {
		log.Println("⚠️  Blob storage not configured, file uploads disabled")
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	coinRepo := repository.NewCoinRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo, coinRepo)
	projectHandler := handler.NewProjectHandler(projectRepo)
	taskHandler := handler.NewTaskHandler(taskRepo, userRepo, templateRepo,
		settingsRepo, coinRepo, notifRepo, activityRepo)
	templateHandler := handler.NewTemplateHandler(templateRepo)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)
	notifHandler := handler.NewNotificationHandler(notifRepo)
	uploadHandler := handler.NewUploadHandler(store)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Profile routes
		authorized.GET("/me", userHandler.Me)
		authorized.PUT("/me/password", userHandler.ChangePassword)
		authorized.GET("/me/coins", userHandler.CoinHistory)

		// Project routes
		authorized.GET("/projects", projectHandler.GetAll)
		authorized.GET("/projects/:id", projectHandler.GetByID)

		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks", taskHandler.List)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.GET("/tasks/:id/activity", taskHandler.Activity)

		// Task lifecycle routes
		authorized.POST("/tasks/:id/start", taskHandler.Start)
		authorized.POST("/tasks/:id/submit", taskHandler.Submit)

		// Action checklist routes
		authorized.POST("/tasks/:id/actions", taskHandler.AddAction)
		authorized.DELETE("/tasks/:id/actions/:action_id", taskHandler.RemoveAction)
		authorized.POST("/tasks/:id/actions/:action_id/complete", taskHandler.CompleteAction)
		authorized.POST("/tasks/:id/actions/:action_id/uncomplete", taskHandler.UncompleteAction)
		authorized.POST("/tasks/:id/apply-template", taskHandler.ApplyTemplate)

		// Template routes (read)
		authorized.GET("/templates", templateHandler.GetAll)
		authorized.GET("/templates/:id", templateHandler.GetByID)

		// Notification routes
		authorized.GET("/notifications", notifHandler.List)
		authorized.POST("/notifications/:id/read", notifHandler.MarkRead)
		authorized.POST("/notifications/read-all", notifHandler.MarkAllRead)

		// File uploads for file_upload actions
		authorized.POST("/uploads", uploadHandler.Upload)
	}

	// Manager routes - managers and admins
	managers := authorized.Group("/")
	managers.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager))
	{
		managers.POST("/projects", projectHandler.Create)
		managers.PUT("/projects/:id", projectHandler.Update)
		managers.DELETE("/projects/:id", projectHandler.Delete)

		managers.DELETE("/tasks/:id", taskHandler.Delete)
		managers.POST("/tasks/:id/block", taskHandler.Block)

		managers.POST("/templates", templateHandler.Create)
		managers.PUT("/templates/:id", templateHandler.Update)
		managers.DELETE("/templates/:id", templateHandler.Delete)

		managers.GET("/users", userHandler.List)
	}

	// Admin routes
	admin := authorized.Group("/")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("/tasks/:id/approve", taskHandler.Approve)
		admin.POST("/tasks/:id/revert", taskHandler.Revert)

		admin.GET("/settings", settingsHandler.Get)
		admin.PUT("/settings", settingsHandler.Update)

		admin.PUT("/users/:id/role", userHandler.ChangeRole)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
