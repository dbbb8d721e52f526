package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invitehub/internal/cache"
	"invitehub/internal/cleanup"
	"invitehub/internal/config"
	"invitehub/internal/database"
	"invitehub/internal/directory"
	"invitehub/internal/handler"
	"invitehub/internal/invitation"
	"invitehub/internal/repository"
	"invitehub/internal/router"
	"invitehub/internal/service"
	"invitehub/internal/validator"
	"invitehub/pkg/auth"
	"invitehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           InviteHub API
// @version         1.0
// @description     Invitation-token service: tokenized links that provision projects and grant roles on redemption.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	projectRepo := repository.NewProjectRepository(mongoDB.Database)
	roleRepo := repository.NewRoleRepository(mongoDB.Database)
	assignmentRepo := repository.NewRoleAssignmentRepository(mongoDB.Database)
	invitationRepo := repository.NewInvitationRepository(mongoDB.Database)

	// Directory
	dir := directory.NewLocalDirectory(projectRepo, roleRepo, assignmentRepo)

	// Invitation core
	types := invitation.NewTypeRegistry(
		invitation.NewCreateProjectType(dir),
		invitation.NewJoinProjectType(dir),
	)
	store := invitation.NewStore(invitationRepo, types)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Reload(loadCtx); err != nil {
		loadCancel()
		logger.Log.WithField("error", err.Error()).Fatal("Failed to load invitation registry")
	}
	loadCancel()

	sessions := cache.NewInviteSessionStore(redisCache)
	coordinator := invitation.NewCoordinator(store, sessions, cfg.InviteSessionTTL)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:        userRepo,
		TokenStore:      cache.NewRefreshTokenStore(redisCache),
		JWTManager:      jwtManager,
		TokenGenerator:  auth.NewRefreshTokenGenerator(),
		RefreshTokenTTL: cfg.RefreshTokenExpiry,
	})
	adminService := service.NewInvitationAdminService(store, types)
	directoryService := service.NewDirectoryService(dir)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService, coordinator)
	redemptionHandler := handler.NewRedemptionHandler(coordinator, int(cfg.InviteSessionTTL.Seconds()))
	adminHandler := handler.NewAdminInvitationHandler(adminService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:       authHandler,
		RedemptionHandler: redemptionHandler,
		AdminHandler:      adminHandler,
		DirectoryHandler:  directoryHandler,
		JWTManager:        jwtManager,
	})

	// Expiry sweeper
	sweeper := cleanup.NewSweeper(store, cfg.CleanupSchedule)
	if err := sweeper.Start(); err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to start expiry sweeper")
	}

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logger.Log.WithField("addr", addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithField("error", err.Error()).Fatal("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Log.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logger.Log.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithField("error", err.Error()).Error("HTTP server shutdown error")
	}

	logger.Log.Info("Stopping expiry sweeper...")
	sweeper.Stop()

	logger.Log.Info("Server shutdown complete")
}
