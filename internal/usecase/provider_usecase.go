package usecase

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"net/http"
)

// ProviderUsecase はAIプロバイダ設定のCRUD。
type ProviderUsecase struct {
	providerRepo repo.ProviderRepository
}

// DI
func NewProviderUsecase(providerRepo repo.ProviderRepository) *ProviderUsecase {
	return &ProviderUsecase{providerRepo: providerRepo}
}

type ProviderInput struct {
	Name         string
	ProviderType string
	APIKey       string
	APIBase      string
	Model        string
	IsActive     bool
}

func validateProviderInput(in ProviderInput) error {
	if in.Name == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.APIKey == "" {
		return NewHTTPError(http.StatusBadRequest, "api_key is required")
	}
	if in.Model == "" {
		return NewHTTPError(http.StatusBadRequest, "model is required")
	}

	switch model.ProviderType(in.ProviderType) {
	case model.ProviderTypeOpenAI:
	case model.ProviderTypeAzure:
		// Azureはエンドポイント必須
		if in.APIBase == "" {
			return NewHTTPError(http.StatusBadRequest, "api_base is required for azure_openai")
		}
	default:
		return NewHTTPError(http.StatusBadRequest, "unsupported provider_type")
	}
	return nil
}

func (u *ProviderUsecase) Create(ctx context.Context, in ProviderInput) (model.Provider, error) {
	if err := validateProviderInput(in); err != nil {
		return model.Provider{}, err
	}

	p := model.Provider{
		Name:         in.Name,
		ProviderType: model.ProviderType(in.ProviderType),
		APIKey:       in.APIKey,
		APIBase:      in.APIBase,
		Model:        in.Model,
		IsActive:     in.IsActive,
	}

	created, err := u.providerRepo.Create(ctx, p)
	if err != nil {
		return model.Provider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ProviderUsecase) Get(ctx context.Context, id int64) (model.Provider, error) {
	p, err := u.providerRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Provider{}, NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	if err != nil {
		return model.Provider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProviderUsecase) List(ctx context.Context) ([]model.Provider, error) {
	providers, err := u.providerRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return providers, nil
}

func (u *ProviderUsecase) Update(ctx context.Context, id int64, in ProviderInput) (model.Provider, error) {
	if err := validateProviderInput(in); err != nil {
		return model.Provider{}, err
	}

	p := model.Provider{
		ID:           id,
		Name:         in.Name,
		ProviderType: model.ProviderType(in.ProviderType),
		APIKey:       in.APIKey,
		APIBase:      in.APIBase,
		Model:        in.Model,
		IsActive:     in.IsActive,
	}

	if err := u.providerRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Provider{}, NewHTTPError(http.StatusNotFound, "Provider not found")
		}
		return model.Provider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.Get(ctx, id)
}

func (u *ProviderUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.providerRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Provider not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
