package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taskboard-simple/dto"
	"github.com/taskboard-simple/models"
	"github.com/taskboard-simple/repositories"
	"gorm.io/gorm"
)

// TaskService handles business logic for the task board
type TaskService struct {
	taskRepo *repositories.TaskRepository
	userRepo *repositories.UserRepository
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo: repositories.NewTaskRepository(),
		userRepo: repositories.NewUserRepository(),
	}
}

// Create persists a new task assigned to an existing user.
// Status always starts as Pending.
func (s *TaskService) Create(req dto.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || req.AssignedTo == 0 {
		return nil, fmt.Errorf("title and assigned_to are required: %w", ErrValidation)
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.TaskPriority(req.Priority)
		if !priority.IsValid() {
			return nil, fmt.Errorf("invalid priority: %w", ErrValidation)
		}
	}

	if _, err := s.userRepo.FindByID(req.AssignedTo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assigned user not found: %w", ErrNotFound)
		}
		return nil, err
	}

	task := models.Task{
		Title:       title,
		Description: req.Description,
		Status:      models.StatusPending,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
	}

	if err := s.taskRepo.Create(&task); err != nil {
		return nil, err
	}

	return &task, nil
}

// ListAll retrieves every task with all fields, assignee included
func (s *TaskService) ListAll() ([]models.Task, error) {
	return s.taskRepo.FindAll()
}

// ListMine retrieves the caller's tasks projected without the assignee field
func (s *TaskService) ListMine(userID uint) ([]dto.MyTaskItem, error) {
	tasks, err := s.taskRepo.FindByAssignee(userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MyTaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, dto.NewMyTaskItem(task))
	}
	return items, nil
}

// UpdateStatus moves a task to a new status. Only the assigned user may
// change it; any valid status can transition to any other.
func (s *TaskService) UpdateStatus(taskID uint, newStatus string, callerID uint) error {
	status := models.TaskStatus(newStatus)
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %w", ErrValidation)
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("task not found: %w", ErrNotFound)
		}
		return err
	}

	if task.AssignedTo != callerID {
		return fmt.Errorf("task is assigned to another user: %w", ErrForbidden)
	}

	return s.taskRepo.UpdateStatus(task.ID, status)
}

// Delete removes a task
func (s *TaskService) Delete(taskID uint) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("task not found: %w", ErrNotFound)
		}
		return err
	}

	return s.taskRepo.Delete(task.ID)
}
