package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type GenerationTaskGormRepository struct {
	db *gorm.DB
}

// DI
func NewGenerationTaskGormRepository(db *gorm.DB) *GenerationTaskGormRepository {
	return &GenerationTaskGormRepository{db: db}
}

func (r *GenerationTaskGormRepository) Create(ctx context.Context, t model.GenerationTask) (model.GenerationTask, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.GenerationTask{}, err
	}
	return t, nil
}

func (r *GenerationTaskGormRepository) FindByID(ctx context.Context, id string) (model.GenerationTask, error) {
	var t model.GenerationTask

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&t).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.GenerationTask{}, repo.ErrNotFound
	}
	if err != nil {
		return model.GenerationTask{}, err
	}
	return t, nil
}

// 新しく作った順
func (r *GenerationTaskGormRepository) List(ctx context.Context, limit int) ([]model.GenerationTask, error) {
	var tasks []model.GenerationTask

	q := r.db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&tasks).Error; err != nil {
		return []model.GenerationTask{}, err
	}
	return tasks, nil
}

func (r *GenerationTaskGormRepository) Update(ctx context.Context, t model.GenerationTask) error {
	res := r.db.WithContext(ctx).
		Model(&model.GenerationTask{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"status":        t.Status,
			"output":        t.Output,
			"quality_score": t.QualityScore,
			"error_message": t.ErrorMessage,
			"completed_at":  t.CompletedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
