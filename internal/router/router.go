// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "invitehub/swagger" // Import generated swagger docs

	"invitehub/internal/handler"
	"invitehub/internal/middleware"
	"invitehub/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	RedemptionHandler *handler.RedemptionHandler
	AdminHandler      *handler.AdminInvitationHandler
	DirectoryHandler  *handler.DirectoryHandler
	JWTManager        *auth.JWTManager
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public invitation landing. Deliberately outside /api/v1: this is the
	// URL admins hand out.
	r.GET("/invitations", cfg.RedemptionHandler.Land)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Admin routes (protected; per-invitation authorization happens in
		// the service against the directory)
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(cfg.JWTManager))
		{
			admin.GET("/invitations", cfg.AdminHandler.List)
			admin.POST("/invitations", cfg.AdminHandler.Create)
			admin.GET("/invitations/:token", cfg.AdminHandler.Get)
			admin.PUT("/invitations/:token", cfg.AdminHandler.Update)
			admin.DELETE("/invitations/:token", cfg.AdminHandler.Remove)
			admin.GET("/invitation-types", cfg.AdminHandler.ListTypes)

			admin.GET("/projects", cfg.DirectoryHandler.ListProjects)
			admin.GET("/roles", cfg.DirectoryHandler.ListRoles)
		}
	}

	return r
}
