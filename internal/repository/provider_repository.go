package repository

import (
	"app/internal/domain/model"
	"context"
)

type ProviderRepository interface {
	Create(ctx context.Context, p model.Provider) (model.Provider, error)
	FindByID(ctx context.Context, id int64) (model.Provider, error)
	List(ctx context.Context) ([]model.Provider, error)
	Update(ctx context.Context, p model.Provider) error
	DeleteByID(ctx context.Context, id int64) error
}
