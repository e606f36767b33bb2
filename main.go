package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/upmon-simple/api/v1"
	"github.com/upmon-simple/config"
	"github.com/upmon-simple/database"
)

func main() {
	// Load environment variables from .env if present
	config.LoadEnv()

	// Set Gin mode
	if config.GetEnv("GIN_MODE", "release") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database and run migrations
	database.Initialize()

	// Initialize router
	router := gin.Default()

	// CORS configuration for the dashboard frontend
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register v1 API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	log.Printf("🚀 upmon API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
