package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskhub/internal/model"
)

type SettingsRepository struct {
	db *gorm.DB
}

type SettingsRepositoryInterface interface {
	Current(ctx context.Context) (model.SettingsRevision, error)
	Append(ctx context.Context, rev *model.SettingsRevision) error
}

var _ SettingsRepositoryInterface = (*SettingsRepository)(nil)

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Current returns the highest-version settings revision, or the built-in
// defaults (version 0) when no revision has been saved yet.
func (r *SettingsRepository) Current(ctx context.Context) (model.SettingsRevision, error) {
	var rev model.SettingsRevision
	err := r.db.WithContext(ctx).Order("version DESC").First(&rev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.SettingsRevision{}, err
	}
	return rev, nil
}

// Append inserts a new revision one version above the current one. Settings
// are never updated in place so old tasks keep an auditable reference to the
// policy they were priced under.
func (r *SettingsRepository) Append(ctx context.Context, rev *model.SettingsRevision) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.SettingsRevision
		err := tx.Order("version DESC").First(&current).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		rev.Version = current.Version + 1
		return tx.Create(rev).Error
	})
}
