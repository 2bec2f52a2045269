package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TemplateElement is an action prototype inside a template. It carries no
// completion state; that is created fresh when the template is applied.
type TemplateElement struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

type TemplateElementList []TemplateElement

func (l TemplateElementList) Value() (driver.Value, error) {
	if l == nil {
		l = TemplateElementList{}
	}
	return json.Marshal(l)
}

func (l *TemplateElementList) Scan(value interface{}) error {
	if value == nil {
		*l = TemplateElementList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for TemplateElementList", value)
	}
	return json.Unmarshal(raw, l)
}

// ActionTemplate is a reusable, named, ordered list of action prototypes.
// Applying a template copies its elements into a task and never mutates the
// template itself.
type ActionTemplate struct {
	ID          uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string              `gorm:"not null" json:"name"`
	Description string              `json:"description"`
	Elements    TemplateElementList `gorm:"type:jsonb;not null;default:'[]'" json:"elements"`
	CreatedBy   uuid.UUID           `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Instantiate deep-copies the template's elements into fresh, incomplete
// actions with newly generated ids. Applying the same template twice yields
// independent actions with distinct ids and identical titles and types.
func (t *ActionTemplate) Instantiate() []Action {
	actions := make([]Action, 0, len(t.Elements))
	for _, el := range t.Elements {
		actions = append(actions, Action{
			ID:          uuid.New(),
			Title:       el.Title,
			Description: el.Description,
			Type:        el.Type,
			Completed:   false,
		})
	}
	return actions
}
