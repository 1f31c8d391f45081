package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TemplateGormRepository struct {
	db *gorm.DB
}

// DI
func NewTemplateGormRepository(db *gorm.DB) *TemplateGormRepository {
	return &TemplateGormRepository{db: db}
}

func (r *TemplateGormRepository) Create(ctx context.Context, t model.Template) (model.Template, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Template{}, err
	}
	return t, nil
}

func (r *TemplateGormRepository) FindByID(ctx context.Context, id int64) (model.Template, error) {
	var t model.Template

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&t).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Template{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Template{}, err
	}
	return t, nil
}

func (r *TemplateGormRepository) List(ctx context.Context) ([]model.Template, error) {
	var templates []model.Template

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&templates).Error; err != nil {
		return []model.Template{}, err
	}
	return templates, nil
}

func (r *TemplateGormRepository) Update(ctx context.Context, t model.Template) error {
	res := r.db.WithContext(ctx).
		Model(&model.Template{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":          t.Name,
			"description":   t.Description,
			"content":       t.Content,
			"variables":     t.Variables,
			"quality_rules": t.QualityRules,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TemplateGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Template{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
