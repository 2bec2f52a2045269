package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// TaskFilter narrows List results. Zero-value fields are ignored.
type TaskFilter struct {
	ProjectID  *uuid.UUID
	AssignedTo *uuid.UUID
	Status     string
}

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// List retrieves tasks matching the filter, newest first
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if filter.ProjectID != nil {
		q = q.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var tasks []model.Task
	result := q.Order("created_at DESC").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update persists the task if its stored version still matches
// expectedVersion, bumping the version on success. A stale version yields
// ErrVersionConflict so concurrent editors cannot silently clobber each
// other's changes.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, expectedVersion int) error {
	updates := map[string]interface{}{
		"project_id":        task.ProjectID,
		"title":             task.Title,
		"description":       task.Description,
		"status":            task.Status,
		"actions":           task.Actions,
		"difficulty_level":  task.DifficultyLevel,
		"coins_reward":      task.CoinsReward,
		"reward_base":       task.RewardBase,
		"reward_multiplier": task.RewardMultiplier,
		"settings_version":  task.SettingsVersion,
		"assigned_to":       task.AssignedTo,
		"due_date":          task.DueDate,
		"completed_at":      task.CompletedAt,
		"version":           expectedVersion + 1,
	}

	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing task from a concurrent edit.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Task{}).
			Where("id = ?", task.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrTaskNotFound
		}
		return ErrVersionConflict
	}

	task.Version = expectedVersion + 1
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
