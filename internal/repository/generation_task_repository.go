package repository

import (
	"app/internal/domain/model"
	"context"
)

type GenerationTaskRepository interface {
	Create(ctx context.Context, t model.GenerationTask) (model.GenerationTask, error)
	FindByID(ctx context.Context, id string) (model.GenerationTask, error)
	// 新しく作った順
	List(ctx context.Context, limit int) ([]model.GenerationTask, error)
	Update(ctx context.Context, t model.GenerationTask) error
}
