package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

type TemplateRepository struct {
	db *gorm.DB
}

type TemplateRepositoryInterface interface {
	Create(ctx context.Context, tmpl *model.ActionTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ActionTemplate, error)
	List(ctx context.Context) ([]model.ActionTemplate, error)
	Update(ctx context.Context, tmpl *model.ActionTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, tmpl *model.ActionTemplate) error {
	return r.db.WithContext(ctx).Create(tmpl).Error
}

func (r *TemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ActionTemplate, error) {
	var tmpl model.ActionTemplate
	result := r.db.WithContext(ctx).First(&tmpl, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, result.Error
	}
	return &tmpl, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]model.ActionTemplate, error) {
	var templates []model.ActionTemplate
	result := r.db.WithContext(ctx).Order("name").Find(&templates)
	if result.Error != nil {
		return nil, result.Error
	}
	return templates, nil
}

func (r *TemplateRepository) Update(ctx context.Context, tmpl *model.ActionTemplate) error {
	result := r.db.WithContext(ctx).Save(tmpl)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ActionTemplate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
