package services

import (
	"fmt"
	"strings"

	"github.com/taskboard-simple/dto"
	"github.com/taskboard-simple/models"
	"github.com/taskboard-simple/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for the user directory
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// Register creates a new user account
func (s *UserService) Register(req dto.RegisterRequest) (*models.User, error) {
	fullname := strings.TrimSpace(req.Fullname)
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if fullname == "" || username == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("missing required fields: %w", ErrValidation)
	}

	// Role defaults to "user"; when supplied it must be a known tier
	role := models.RoleUser
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid role: %w", ErrValidation)
		}
	}

	// Username checked before email, each independently
	taken, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("username already exists: %w", ErrConflict)
	}

	taken, err = s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("email already exists: %w", ErrConflict)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Fullname: fullname,
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		Gender:   req.Gender,
		Role:     role,
	}

	// A concurrent registration can still slip past the checks above; the
	// unique indexes make the insert fail instead of duplicating.
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsers retrieves all users. Password hashes never leave the model's
// JSON projection.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// DeleteUser removes a user and their assigned tasks. Callers cannot delete
// their own account.
func (s *UserService) DeleteUser(targetID, callerID uint) error {
	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return err
	}

	if user.ID == callerID {
		return fmt.Errorf("cannot delete yourself: %w", ErrForbidden)
	}

	return s.userRepo.DeleteWithTasks(user.ID)
}

// DeleteAllUsers wipes the user table (tasks included) in one transaction.
// Returns the number of users removed; zero with no error means the table
// was already empty.
func (s *UserService) DeleteAllUsers() (int64, error) {
	count, err := s.userRepo.Count()
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	return s.userRepo.DeleteAllWithTasks()
}
