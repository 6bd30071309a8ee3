package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSuperadmin UserRole = "superadmin"
)

// User is an admin panel credential. Site visitors never get accounts;
// the only users in the system are the people running the school.
type User struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Name     string   `json:"name" gorm:"size:100"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password string   `json:"-" gorm:"not null;size:255"` // bcrypt hash
	Role     UserRole `json:"role" gorm:"size:20;default:admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
