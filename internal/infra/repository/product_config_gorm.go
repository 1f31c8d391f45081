package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProductConfigGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductConfigGormRepository(db *gorm.DB) *ProductConfigGormRepository {
	return &ProductConfigGormRepository{db: db}
}

// 有効な設定を1件取得
func (r *ProductConfigGormRepository) FindActive(ctx context.Context) (model.ProductServiceConfig, error) {
	var cfg model.ProductServiceConfig

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id desc").
		First(&cfg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductServiceConfig{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductServiceConfig{}, err
	}
	return cfg, nil
}

// 既存の有効設定を無効化してから新しい設定を保存（有効は常に1件）
func (r *ProductConfigGormRepository) Save(ctx context.Context, cfg model.ProductServiceConfig) (model.ProductServiceConfig, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&model.ProductServiceConfig{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		cfg.IsActive = true
		return tx.Create(&cfg).Error
	})

	if err != nil {
		return model.ProductServiceConfig{}, err
	}
	return cfg, nil
}
