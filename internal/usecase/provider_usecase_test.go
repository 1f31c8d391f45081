package usecase_test

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validProviderInput() usecase.ProviderInput {
	return usecase.ProviderInput{
		Name:         "primary",
		ProviderType: "openai",
		APIKey:       "sk-test",
		Model:        "gpt-4",
		IsActive:     true,
	}
}

func TestProviderUsecase_Create_Validation(t *testing.T) {
	uc := usecase.NewProviderUsecase(new(ProviderRepoMock))

	cases := []struct {
		name   string
		mutate func(*usecase.ProviderInput)
	}{
		{"name missing", func(in *usecase.ProviderInput) { in.Name = "" }},
		{"api_key missing", func(in *usecase.ProviderInput) { in.APIKey = "" }},
		{"model missing", func(in *usecase.ProviderInput) { in.Model = "" }},
		{"unknown type", func(in *usecase.ProviderInput) { in.ProviderType = "bedrock" }},
		{"azure without api_base", func(in *usecase.ProviderInput) { in.ProviderType = "azure_openai" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validProviderInput()
			tc.mutate(&in)

			_, err := uc.Create(context.Background(), in)
			assertHTTPError(t, err, 400)
		})
	}
}

func TestProviderUsecase_Create_AzureWithEndpoint(t *testing.T) {
	providers := new(ProviderRepoMock)
	providers.On("Create", mock.Anything, mock.MatchedBy(func(p model.Provider) bool {
		return p.ProviderType == model.ProviderTypeAzure && p.APIBase == "https://example.openai.azure.com"
	})).Return(model.Provider{ID: 1, ProviderType: model.ProviderTypeAzure}, nil)

	uc := usecase.NewProviderUsecase(providers)

	in := validProviderInput()
	in.ProviderType = "azure_openai"
	in.APIBase = "https://example.openai.azure.com"

	created, err := uc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	providers.AssertExpectations(t)
}

func TestProviderUsecase_Get_NotFound(t *testing.T) {
	providers := new(ProviderRepoMock)
	providers.On("FindByID", mock.Anything, int64(9)).
		Return(model.Provider{}, repo.ErrNotFound)

	uc := usecase.NewProviderUsecase(providers)

	_, err := uc.Get(context.Background(), 9)
	assertHTTPError(t, err, 404)
}

func TestProviderUsecase_Delete_NotFound(t *testing.T) {
	providers := new(ProviderRepoMock)
	providers.On("DeleteByID", mock.Anything, int64(9)).Return(repo.ErrNotFound)

	uc := usecase.NewProviderUsecase(providers)

	err := uc.Delete(context.Background(), 9)
	assertHTTPError(t, err, 404)
}
