package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleAdmin    = "admin"    // full control, approves and reverts tasks
	RoleManager  = "manager"  // manages projects, tasks and templates
	RoleEmployee = "employee" // works assigned tasks
)

// ValidRole reports whether r is a known user role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	Name           string    `gorm:"not null" json:"name"`
	Role           string    `gorm:"not null;default:'employee';check:role IN ('admin', 'manager', 'employee')" json:"role"`
	Coins          int       `gorm:"not null;default:0" json:"coins"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
