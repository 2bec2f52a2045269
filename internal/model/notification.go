package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds.
const (
	NotifyTaskAssigned  = "task_assigned"
	NotifyTaskSubmitted = "task_submitted"
	NotifyTaskApproved  = "task_approved"
	NotifyTaskReverted  = "task_reverted"
	NotifyTaskBlocked   = "task_blocked"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string     `gorm:"not null" json:"kind"`
	Title     string     `gorm:"not null" json:"title"`
	Body      string     `json:"body"`
	TaskID    *uuid.UUID `gorm:"type:uuid" json:"task_id,omitempty"`
	Read      bool       `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
