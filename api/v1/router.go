package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/taskboard-simple/middleware"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Public endpoints
	router.POST("/add_user", Register)
	router.GET("/get_users", GetUsers)
	router.POST("/login", Login)
	router.POST("/logout", Logout)

	// Endpoints for any authenticated user
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/my_tasks", MyTasks)
		authed.PUT("/update_task_status/:task_id", UpdateTaskStatus)
	}

	// Admin-only endpoints
	admin := router.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.DELETE("/delete_user/:user_id", DeleteUser)
		admin.DELETE("/delete_all_users", DeleteAllUsers)
		admin.POST("/add_task", CreateTask)
		admin.GET("/get_all_tasks", GetAllTasks)
		admin.DELETE("/delete_task/:task_id", DeleteTask)
	}
}
