package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/upmon-simple/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint, no auth
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.POST("", CreateProject)
		projectGroup.GET("", ListProjects)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PATCH("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	// Nested service and log endpoints share the projects group
	serviceController := NewServiceController()
	serviceController.RegisterRoutes(projectGroup)

	logController := NewLogController()
	logController.RegisterRoutes(projectGroup)
}
