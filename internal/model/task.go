package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task statuses. Normal flow is forward-only; the single sanctioned reverse
// transition is waiting_approval -> pending (admin revert).
const (
	StatusPending         = "pending"
	StatusInProgress      = "in_progress"
	StatusWaitingApproval = "waiting_approval"
	StatusCompleted       = "completed"
	StatusBlocked         = "blocked"
)

var (
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrChecklistIncomplete = errors.New("checklist is not complete")
	ErrActionNotFound      = errors.New("action not found")
	ErrActionsLocked       = errors.New("actions cannot be modified in the current status")
)

// allowedTransitions enumerates every legal status change. completed and
// blocked are terminal.
var allowedTransitions = map[string][]string{
	StatusPending:         {StatusInProgress, StatusWaitingApproval, StatusBlocked},
	StatusInProgress:      {StatusWaitingApproval, StatusBlocked},
	StatusWaitingApproval: {StatusCompleted, StatusPending, StatusBlocked},
	StatusCompleted:       {},
	StatusBlocked:         {},
}

// ValidStatus reports whether s is a known task status.
func ValidStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether a task may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Task is a unit of assigned work carrying an ordered action checklist and a
// coin reward computed from the settings revision current at edit time. The
// resolved reward inputs are copied onto the task so the reward stays an
// auditable historical snapshot even after settings change.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"not null;default:'pending'" json:"status"`
	Actions     ActionList `gorm:"type:jsonb;not null;default:'[]'" json:"actions"`

	DifficultyLevel  int     `gorm:"not null;default:1" json:"difficulty_level"`
	CoinsReward      int     `gorm:"not null;default:0" json:"coins_reward"`
	RewardBase       float64 `gorm:"not null;default:0" json:"reward_base"`
	RewardMultiplier float64 `gorm:"not null;default:0" json:"reward_multiplier"`
	SettingsVersion  int     `gorm:"not null;default:0" json:"settings_version"`

	AssignedTo *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`

	// Version is the optimistic-concurrency token; every successful update
	// increments it and stale writers are rejected.
	Version int `gorm:"not null;default:1" json:"version"`

	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Progress returns the checklist completion summary for the task.
func (t *Task) Progress() Progress {
	return ChecklistProgress(t.Actions)
}

// Transition moves the task to a new status after checking legality. The
// submit path additionally requires a fully completed, non-empty checklist.
func (t *Task) Transition(to string) error {
	if !ValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if !CanTransition(t.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, to)
	}
	if to == StatusWaitingApproval && !t.Progress().AllComplete() {
		return ErrChecklistIncomplete
	}
	t.Status = to
	return nil
}

// actionsLocked reports whether the checklist is frozen. Once a task is
// submitted for approval or completed its actions are read-only; an admin
// revert to pending unlocks them again.
func (t *Task) actionsLocked() bool {
	return t.Status == StatusWaitingApproval || t.Status == StatusCompleted
}

// CompleteAction marks the identified action as done, recording who and when,
// and merges in the caller-supplied payload after validating it against the
// action type.
func (t *Task) CompleteAction(actionID, userID uuid.UUID, payload ActionPayload, now time.Time) error {
	if t.actionsLocked() {
		return ErrActionsLocked
	}
	for i := range t.Actions {
		if t.Actions[i].ID != actionID {
			continue
		}
		if err := payload.ValidateFor(t.Actions[i].Type); err != nil {
			return err
		}
		t.Actions[i].Completed = true
		t.Actions[i].CompletedAt = &now
		t.Actions[i].CompletedBy = &userID
		t.Actions[i].Payload = payload
		return nil
	}
	return ErrActionNotFound
}

// UncompleteAction reverses CompleteAction, clearing the completion fields
// and payload while leaving every other action untouched.
func (t *Task) UncompleteAction(actionID uuid.UUID) error {
	if t.actionsLocked() {
		return ErrActionsLocked
	}
	for i := range t.Actions {
		if t.Actions[i].ID != actionID {
			continue
		}
		t.Actions[i].Completed = false
		t.Actions[i].CompletedAt = nil
		t.Actions[i].CompletedBy = nil
		t.Actions[i].Payload = ActionPayload{}
		return nil
	}
	return ErrActionNotFound
}
