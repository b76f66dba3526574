package models

import (
	"time"
)

// TaskStatus represents the progress state of a task
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

// IsValid reports whether the status is one of the known states.
func (s TaskStatus) IsValid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// TaskPriority represents how urgent a task is
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// IsValid reports whether the priority is one of the known levels.
func (p TaskPriority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task represents a unit of work assigned to a user
type Task struct {
	ID          uint         `json:"task_id" gorm:"primaryKey;column:task_id"`
	Title       string       `json:"title" gorm:"size:150;not null"`
	Description string       `json:"description" gorm:"type:text"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(20);default:'Medium'"`
	AssignedTo  uint         `json:"assigned_to" gorm:"not null;index"`
	CreatedAt   time.Time    `json:"created_at"`

	// Relations
	Assignee User `json:"-" gorm:"foreignKey:AssignedTo;references:ID"`
}

// TableName overrides the default table name
func (Task) TableName() string {
	return "tasks"
}
