package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity actions recorded against tasks.
const (
	ActivityCreated           = "created"
	ActivityUpdated           = "updated"
	ActivityStarted           = "started"
	ActivitySubmitted         = "submitted"
	ActivityApproved          = "approved"
	ActivityReverted          = "reverted"
	ActivityBlocked           = "blocked"
	ActivityActionCompleted   = "action_completed"
	ActivityActionUncompleted = "action_uncompleted"
	ActivityTemplateApplied   = "template_applied"
)

// ActivityEntry is an append-only audit record of something happening to a
// task.
type ActivityEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null" json:"actor_id"`
	Action    string    `gorm:"not null" json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
