package repositories

import (
	"github.com/taskboard-simple/database"
	"github.com/taskboard-simple/models"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindAll retrieves all tasks
func (r *TaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.Find(&tasks)
	return tasks, result.Error
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(id uint) (models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, "task_id = ?", id)
	return task, result.Error
}

// FindByAssignee retrieves all tasks assigned to a user
func (r *TaskRepository) FindByAssignee(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.Where("assigned_to = ?", userID).Find(&tasks)
	return tasks, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task *models.Task) error {
	return database.DB.Create(task).Error
}

// UpdateStatus changes the status column of a task
func (r *TaskRepository) UpdateStatus(id uint, status models.TaskStatus) error {
	return database.DB.Model(&models.Task{}).Where("task_id = ?", id).
		Update("status", status).Error
}

// Delete removes a task from the database
func (r *TaskRepository) Delete(id uint) error {
	return database.DB.Delete(&models.Task{}, "task_id = ?", id).Error
}

// DB returns the database instance
func (r *TaskRepository) DB() *gorm.DB {
	return database.DB
}
