package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProviderGormRepository struct {
	db *gorm.DB
}

// DI
func NewProviderGormRepository(db *gorm.DB) *ProviderGormRepository {
	return &ProviderGormRepository{db: db}
}

func (r *ProviderGormRepository) Create(ctx context.Context, p model.Provider) (model.Provider, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Provider{}, err
	}
	return p, nil
}

func (r *ProviderGormRepository) FindByID(ctx context.Context, id int64) (model.Provider, error) {
	var p model.Provider

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Provider{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Provider{}, err
	}
	return p, nil
}

func (r *ProviderGormRepository) List(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&providers).Error; err != nil {
		return []model.Provider{}, err
	}
	return providers, nil
}

func (r *ProviderGormRepository) Update(ctx context.Context, p model.Provider) error {
	res := r.db.WithContext(ctx).
		Model(&model.Provider{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":          p.Name,
			"provider_type": p.ProviderType,
			"api_key":       p.APIKey,
			"api_base":      p.APIBase,
			"model":         p.Model,
			"is_active":     p.IsActive,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProviderGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Provider{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
