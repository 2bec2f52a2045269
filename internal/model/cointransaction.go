package model

import (
	"time"

	"github.com/google/uuid"
)

// Coin transaction reasons.
const (
	CoinReasonTaskCompleted = "task_completed"
	CoinReasonMonthlyBonus  = "monthly_bonus"
	CoinReasonAdjustment    = "adjustment"
)

// CoinTransaction is one entry in the append-only coin ledger. The user's
// balance is incremented in the same database transaction that appends the
// entry.
type CoinTransaction struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TaskID    *uuid.UUID `gorm:"type:uuid" json:"task_id,omitempty"`
	Amount    int        `gorm:"not null" json:"amount"`
	Reason    string     `gorm:"not null" json:"reason"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
