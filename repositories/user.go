package repositories

import (
	"github.com/taskboard-simple/database"
	"github.com/taskboard-simple/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := database.DB.Find(&users)
	return users, result.Error
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "user_id = ?", id)
	return user, result.Error
}

// FindByUsernameOrEmail retrieves a user matching the identifier on either column
func (r *UserRepository) FindByUsernameOrEmail(identifier string) (models.User, error) {
	var user models.User
	result := database.DB.Where("username = ? OR email = ?", identifier, identifier).First(&user)
	return user, result.Error
}

// ExistsByUsername checks whether a username is already taken
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks whether an email is already registered
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// Count returns the number of users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Count(&count).Error
	return count, err
}

// DeleteWithTasks removes a user and every task assigned to them.
// Both deletes run in one transaction so no orphan tasks survive.
func (r *UserRepository) DeleteWithTasks(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assigned_to = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "user_id = ?", id).Error
	})
}

// DeleteAllWithTasks removes every user and every task in one transaction
// and returns how many users were deleted.
func (r *UserRepository) DeleteAllWithTasks() (int64, error) {
	var deleted int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Task{}).Error; err != nil {
			return err
		}
		result := tx.Where("1 = 1").Delete(&models.User{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}

// DB returns the database instance
func (r *UserRepository) DB() *gorm.DB {
	return database.DB
}
