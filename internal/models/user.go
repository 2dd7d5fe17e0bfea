package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleNone       UserRole = ""
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// IsValid reports whether r is one of the assignable roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// In reports whether r is a member of roles. RoleNone is never a member.
func (r UserRole) In(roles ...UserRole) bool {
	if r == RoleNone {
		return false
	}
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID       string    `json:"id" gorm:"primaryKey;size:36"`
	Name     string    `json:"name" gorm:"size:100"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PhotoURL *string   `json:"photo_url,omitempty" gorm:"size:500"`
	Role     *UserRole `json:"role,omitempty" gorm:"size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// RoleOrNone returns the stored role, or RoleNone when the field is unset.
func (u *User) RoleOrNone() UserRole {
	if u == nil || u.Role == nil {
		return RoleNone
	}
	return *u.Role
}
