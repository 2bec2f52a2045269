package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Action types supported by the checklist.
const (
	ActionText       = "text"
	ActionLongText   = "long_text"
	ActionFileUpload = "file_upload"
	ActionApproval   = "approval"
	ActionDate       = "date"
	ActionDocument   = "document"
	ActionInfo       = "info"
)

var ErrInvalidActionType = errors.New("invalid action type")

// ValidActionType reports whether t is one of the known action types.
func ValidActionType(t string) bool {
	switch t {
	case ActionText, ActionLongText, ActionFileUpload, ActionApproval, ActionDate, ActionDocument, ActionInfo:
		return true
	}
	return false
}

// ActionPayload holds the per-type data of an action. Exactly the fields
// relevant to the action's type are set; ValidateFor rejects mismatches.
type ActionPayload struct {
	Text    *string    `json:"text,omitempty"`
	FileURL *string    `json:"file_url,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
}

// ValidateFor checks that the payload carries the data required by the
// action type and nothing that belongs to another type.
func (p ActionPayload) ValidateFor(actionType string) error {
	switch actionType {
	case ActionText, ActionLongText:
		if p.Text == nil || *p.Text == "" {
			return fmt.Errorf("action type %q requires a text payload", actionType)
		}
		if p.FileURL != nil || p.Date != nil {
			return fmt.Errorf("action type %q accepts only a text payload", actionType)
		}
	case ActionFileUpload:
		if p.FileURL == nil || *p.FileURL == "" {
			return fmt.Errorf("action type %q requires a file_url payload", actionType)
		}
		if p.Text != nil || p.Date != nil {
			return fmt.Errorf("action type %q accepts only a file_url payload", actionType)
		}
	case ActionDate:
		if p.Date == nil {
			return fmt.Errorf("action type %q requires a date payload", actionType)
		}
		if p.Text != nil || p.FileURL != nil {
			return fmt.Errorf("action type %q accepts only a date payload", actionType)
		}
	case ActionDocument:
		if (p.FileURL == nil || *p.FileURL == "") && (p.Text == nil || *p.Text == "") {
			return fmt.Errorf("action type %q requires a file_url or text payload", actionType)
		}
		if p.Date != nil {
			return fmt.Errorf("action type %q does not accept a date payload", actionType)
		}
	case ActionApproval, ActionInfo:
		if p.Text != nil || p.FileURL != nil || p.Date != nil {
			return fmt.Errorf("action type %q does not accept a payload", actionType)
		}
	default:
		return ErrInvalidActionType
	}
	return nil
}

// Action is a single checklist step embedded in a task. Completing an action
// always sets Completed, CompletedAt and CompletedBy together; uncompleting
// clears all three.
type Action struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Type        string        `json:"type"`
	Completed   bool          `json:"completed"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CompletedBy *uuid.UUID    `json:"completed_by,omitempty"`
	Payload     ActionPayload `json:"payload,omitempty"`
}

// ActionList is stored on the task as a single JSONB column; every mutation
// replaces the whole array, matching the document-style write model.
type ActionList []Action

func (l ActionList) Value() (driver.Value, error) {
	if l == nil {
		l = ActionList{}
	}
	return json.Marshal(l)
}

func (l *ActionList) Scan(value interface{}) error {
	if value == nil {
		*l = ActionList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for ActionList", value)
	}
	return json.Unmarshal(raw, l)
}

// Progress summarizes checklist completion for a task.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// AllComplete reports whether every action is done. An empty checklist is
// never considered complete, so a task without actions cannot be submitted.
func (p Progress) AllComplete() bool {
	return p.Total > 0 && p.Completed == p.Total
}

// ChecklistProgress computes completion counts over an actions list.
// Percent is rounded to the nearest integer and is 0 for an empty list.
func ChecklistProgress(actions []Action) Progress {
	total := len(actions)
	completed := 0
	for _, a := range actions {
		if a.Completed {
			completed++
		}
	}
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return Progress{Completed: completed, Total: total, Percent: percent}
}
