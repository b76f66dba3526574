package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-simple/middleware"
)

// GetUsers lists every account without password hashes
func GetUsers(c *gin.Context) {
	users, err := userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"users":  users,
	})
}

// DeleteUser removes a user by ID. Admins cannot delete their own account.
func DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	callerID, ok := middleware.SessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Login required",
		})
		return
	}

	if err := userService.DeleteUser(userID, callerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}

// DeleteAllUsers wipes the user table. An empty table is reported as a
// successful no-op.
func DeleteAllUsers(c *gin.Context) {
	deleted, err := userService.DeleteAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	if deleted == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "No users found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "All users deleted successfully",
	})
}
