package repository

import "errors"

// Common repository errors
var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrTemplateNotFound is returned when an action template is not found
	ErrTemplateNotFound = errors.New("action template not found")

	// ErrVersionConflict is returned when a task update carries a stale
	// optimistic-concurrency version
	ErrVersionConflict = errors.New("task was modified by someone else")
)
