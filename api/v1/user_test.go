package v1

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskboard-simple/database"
	"github.com/taskboard-simple/models"
)

func TestGetUsersExcludesPasswordHash(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	createUser(t, "Jane Doe", "jane", "jane@example.com", "secret123", models.RoleUser)

	w := doJSON(router, "GET", "/api/get_users", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	users := decodeBody(t, w)["users"].([]interface{})
	assert.Len(t, users, 1)
	assert.False(t, strings.Contains(strings.ToLower(w.Body.String()), "password"))
}

func TestDeleteUser(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	admin := createUser(t, "Administrator", "admin", "admin@example.com", "admin123", models.RoleAdmin)
	employee := createUser(t, "Employee", "emp", "emp@example.com", "emp12345", models.RoleUser)
	adminToken := tokenFor(t, admin)

	// Deleting a user also removes their assigned tasks (same transaction)
	task := models.Task{Title: "Cleanup", Status: models.StatusPending, Priority: models.PriorityMedium, AssignedTo: employee.ID}
	assert.NoError(t, database.DB.Create(&task).Error)

	w := doJSON(router, "DELETE", fmt.Sprintf("/api/delete_user/%d", employee.ID), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	var userCount, taskCount int64
	database.DB.Model(&models.User{}).Count(&userCount)
	database.DB.Model(&models.Task{}).Count(&taskCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(0), taskCount)
}

func TestDeleteUserSelfForbidden(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	admin := createUser(t, "Administrator", "admin", "admin@example.com", "admin123", models.RoleAdmin)

	w := doJSON(router, "DELETE", fmt.Sprintf("/api/delete_user/%d", admin.ID), nil, tokenFor(t, admin))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUserNotFound(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	admin := createUser(t, "Administrator", "admin", "admin@example.com", "admin123", models.RoleAdmin)

	w := doJSON(router, "DELETE", "/api/delete_user/999", nil, tokenFor(t, admin))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserAuthz(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	employee := createUser(t, "Employee", "emp", "emp@example.com", "emp12345", models.RoleUser)

	// No session at all
	w := doJSON(router, "DELETE", "/api/delete_user/1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logged in but not admin
	w = doJSON(router, "DELETE", "/api/delete_user/1", nil, tokenFor(t, employee))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteAllUsers(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	admin := createUser(t, "Administrator", "admin", "admin@example.com", "admin123", models.RoleAdmin)
	employee := createUser(t, "Employee", "emp", "emp@example.com", "emp12345", models.RoleUser)
	adminToken := tokenFor(t, admin)

	task := models.Task{Title: "Orphan check", Status: models.StatusPending, Priority: models.PriorityLow, AssignedTo: employee.ID}
	assert.NoError(t, database.DB.Create(&task).Error)

	w := doJSON(router, "DELETE", "/api/delete_all_users", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All users deleted successfully", decodeBody(t, w)["message"])

	var userCount, taskCount int64
	database.DB.Model(&models.User{}).Count(&userCount)
	database.DB.Model(&models.Task{}).Count(&taskCount)
	assert.Equal(t, int64(0), userCount)
	assert.Equal(t, int64(0), taskCount)

	// The table is now empty; a second wipe succeeds as a no-op.
	// The token stays valid because sessions are stateless.
	w = doJSON(router, "DELETE", "/api/delete_all_users", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No users found", decodeBody(t, w)["message"])
}
