package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether the role is one of the known tiers.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account in the system
type User struct {
	ID        uint      `json:"user_id" gorm:"primaryKey;column:user_id"`
	Fullname  string    `json:"fullname" gorm:"size:150;not null"`
	Username  string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // Password hash is not exposed in JSON
	Phone     *string   `json:"phone" gorm:"size:15"`
	Gender    *string   `json:"gender" gorm:"size:10"`
	Role      Role      `json:"role" gorm:"type:varchar(20);default:'user'"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the default table name
func (User) TableName() string {
	return "users"
}
