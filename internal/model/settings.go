package model

import (
	"time"

	"github.com/google/uuid"
)

// Default difficulty bounds. The valid range is configurable per settings
// revision rather than hardcoded.
const (
	DefaultDifficultyMin = 1
	DefaultDifficultyMax = 10
)

// SettingsRevision is an append-only snapshot of the global reward policy.
// Settings are never updated in place: each change inserts a new revision
// with a higher version, and tasks record the version their reward was
// computed from.
type SettingsRevision struct {
	ID                   uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Version              int        `gorm:"uniqueIndex;not null" json:"version"`
	TaskCompletionBase   float64    `gorm:"not null" json:"task_completion_base"`
	ComplexityMultiplier float64    `gorm:"not null" json:"complexity_multiplier"`
	MonthlyBonus         int        `gorm:"not null" json:"monthly_bonus"`
	DifficultyMin        int        `gorm:"not null" json:"difficulty_min"`
	DifficultyMax        int        `gorm:"not null" json:"difficulty_max"`
	CreatedBy            *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// DefaultSettings is the implicit version-0 revision used before an admin
// has saved any policy.
func DefaultSettings() SettingsRevision {
	return SettingsRevision{
		Version:              0,
		TaskCompletionBase:   10,
		ComplexityMultiplier: 1,
		MonthlyBonus:         0,
		DifficultyMin:        DefaultDifficultyMin,
		DifficultyMax:        DefaultDifficultyMax,
	}
}

// DifficultyInRange checks a difficulty level against this revision's bounds.
func (s SettingsRevision) DifficultyInRange(level int) bool {
	return level >= s.DifficultyMin && level <= s.DifficultyMax
}
