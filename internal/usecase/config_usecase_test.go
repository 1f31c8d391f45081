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

type ConfiguratorMock struct{ mock.Mock }

func (m *ConfiguratorMock) Configure(ctx context.Context, endpoint string, apiKey string, headers map[string]string) error {
	args := m.Called(ctx, endpoint, apiKey, headers)
	return args.Error(0)
}

type ConfigRepoMock struct{ mock.Mock }

func (m *ConfigRepoMock) FindActive(ctx context.Context) (model.ProductServiceConfig, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(model.ProductServiceConfig)
	return cfg, args.Error(1)
}

func (m *ConfigRepoMock) Save(ctx context.Context, cfg model.ProductServiceConfig) (model.ProductServiceConfig, error) {
	args := m.Called(ctx, cfg)
	saved, _ := args.Get(0).(model.ProductServiceConfig)
	return saved, args.Error(1)
}

func TestConfigUsecase_Configure_RequiresEndpoint(t *testing.T) {
	uc := usecase.NewConfigUsecase(new(ConfiguratorMock), new(ConfigRepoMock))

	err := uc.Configure(context.Background(), usecase.ConfigureInput{})
	assertHTTPError(t, err, 400)
}

func TestConfigUsecase_Configure_DelegatesToGateway(t *testing.T) {
	configurator := new(ConfiguratorMock)
	configurator.On("Configure", mock.Anything, "http://products.local", "secret",
		map[string]string{"X-Tenant": "shop-1"}).Return(nil)

	uc := usecase.NewConfigUsecase(configurator, new(ConfigRepoMock))

	err := uc.Configure(context.Background(), usecase.ConfigureInput{
		Endpoint: "http://products.local",
		APIKey:   "secret",
		Headers:  map[string]string{"X-Tenant": "shop-1"},
	})
	assert.NoError(t, err)
	configurator.AssertExpectations(t)
}

func TestConfigUsecase_GetConfig_NotFound(t *testing.T) {
	configRepo := new(ConfigRepoMock)
	configRepo.On("FindActive", mock.Anything).
		Return(model.ProductServiceConfig{}, repo.ErrNotFound)

	uc := usecase.NewConfigUsecase(new(ConfiguratorMock), configRepo)

	_, err := uc.GetConfig(context.Background())
	assertHTTPError(t, err, 404)
}

func TestConfigUsecase_GetConfig_ParsesHeaders(t *testing.T) {
	configRepo := new(ConfigRepoMock)
	configRepo.On("FindActive", mock.Anything).
		Return(model.ProductServiceConfig{
			Endpoint: "http://products.local",
			APIKey:   "secret",
			Headers:  `{"X-Tenant": "shop-1"}`,
			IsActive: true,
		}, nil)

	uc := usecase.NewConfigUsecase(new(ConfiguratorMock), configRepo)

	res, err := uc.GetConfig(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "http://products.local", res.Endpoint)
	assert.Equal(t, map[string]string{"X-Tenant": "shop-1"}, res.Headers)
}

// 壊れたヘッダーJSONは空マップ扱い
func TestConfigUsecase_GetConfig_BrokenHeadersIgnored(t *testing.T) {
	configRepo := new(ConfigRepoMock)
	configRepo.On("FindActive", mock.Anything).
		Return(model.ProductServiceConfig{
			Endpoint: "http://products.local",
			Headers:  "not json",
			IsActive: true,
		}, nil)

	uc := usecase.NewConfigUsecase(new(ConfiguratorMock), configRepo)

	res, err := uc.GetConfig(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{}, res.Headers)
}
