package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole controls what backoffice areas a staff account can reach.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleOperator UserRole = "operator"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator:
		return true
	}
	return false
}

// User is a backoffice staff account.
type User struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Username       string     `json:"username" gorm:"type:text;uniqueIndex;not null"`
	Email          string     `json:"email" gorm:"type:text;uniqueIndex;not null"`
	FullName       string     `json:"full_name" gorm:"type:text"`
	HashedPassword string     `json:"-" gorm:"type:text;not null"`
	Role           UserRole   `json:"role" gorm:"type:text;not null;default:'operator'"`
	Active         bool       `json:"is_active" gorm:"default:true"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
