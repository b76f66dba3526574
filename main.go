package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/taskboard-simple/api/v1"
	"github.com/taskboard-simple/config"
	"github.com/taskboard-simple/database"
)

func main() {
	// Load environment and connect to the database
	config.LoadEnv()
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "taskboard-api",
			"version": "1.0.0",
		})
	})

	// API routes
	v1.RegisterRoutes(router.Group("/api"))

	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 Taskboard API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
