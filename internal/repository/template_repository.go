package repository

import (
	"app/internal/domain/model"
	"context"
)

type TemplateRepository interface {
	Create(ctx context.Context, t model.Template) (model.Template, error)
	FindByID(ctx context.Context, id int64) (model.Template, error)
	List(ctx context.Context) ([]model.Template, error)
	Update(ctx context.Context, t model.Template) error
	DeleteByID(ctx context.Context, id int64) error
}
