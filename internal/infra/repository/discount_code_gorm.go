package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type DiscountCodeGormRepository struct {
	db *gorm.DB
}

// DI
func NewDiscountCodeGormRepository(db *gorm.DB) *DiscountCodeGormRepository {
	return &DiscountCodeGormRepository{db: db}
}

// codeで取得（大文字小文字を区別しない）
func (r *DiscountCodeGormRepository) FindByCode(ctx context.Context, code string) (model.DiscountCode, error) {
	var dc model.DiscountCode

	err := r.db.WithContext(ctx).
		Where("LOWER(code) = LOWER(?)", code).
		First(&dc).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DiscountCode{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DiscountCode{}, err
	}
	return dc, nil
}

// 利用回数をプラス
func (r *DiscountCodeGormRepository) IncrementUsage(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).
		Model(&model.DiscountCode{}).
		Where("LOWER(code) = LOWER(?)", code).
		Update("usage_count", gorm.Expr("usage_count + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
