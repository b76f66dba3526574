package dto

import (
	"time"

	"github.com/taskboard-simple/models"
)

// CreateTaskRequest represents the payload for creating a task
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	AssignedTo  uint   `json:"assigned_to"`
}

// UpdateTaskStatusRequest represents a status change request
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MyTaskItem is the projection returned by the my-tasks listing.
// The assignee is omitted since the caller already knows it is theirs.
type MyTaskItem struct {
	TaskID      uint                `json:"task_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	CreatedAt   time.Time           `json:"created_at"`
}

// NewMyTaskItem builds the projection from a task entity
func NewMyTaskItem(task models.Task) MyTaskItem {
	return MyTaskItem{
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
	}
}
