package usecase

import (
	repo "app/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// 接続設定の保存だけを約束（実装はgateway、保存と同時にキャッシュを消す）
type ProductConfigurator interface {
	Configure(ctx context.Context, endpoint string, apiKey string, headers map[string]string) error
}

// ConfigUsecase は /api/v1/config/product-service の業務ロジック。
type ConfigUsecase struct {
	configurator ProductConfigurator
	configRepo   repo.ProductConfigRepository
}

// DI
func NewConfigUsecase(configurator ProductConfigurator, configRepo repo.ProductConfigRepository) *ConfigUsecase {
	return &ConfigUsecase{
		configurator: configurator,
		configRepo:   configRepo,
	}
}

type ConfigureInput struct {
	Endpoint string
	APIKey   string
	Headers  map[string]string
}

type ConfigResponse struct {
	Endpoint string            `json:"endpoint"`
	APIKey   string            `json:"api_key,omitempty"`
	Headers  map[string]string `json:"headers"`
}

// Configure は外部商品サービスの設定を更新する。
func (u *ConfigUsecase) Configure(ctx context.Context, in ConfigureInput) error {
	if in.Endpoint == "" {
		return NewHTTPError(http.StatusBadRequest, "endpoint is required")
	}

	if err := u.configurator.Configure(ctx, in.Endpoint, in.APIKey, in.Headers); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// GetConfig は有効な設定を返す。
func (u *ConfigUsecase) GetConfig(ctx context.Context) (ConfigResponse, error) {
	cfg, err := u.configRepo.FindActive(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return ConfigResponse{}, NewHTTPError(http.StatusNotFound, "Configuration not found")
	}
	if err != nil {
		return ConfigResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	headers := map[string]string{}
	if cfg.Headers != "" {
		//壊れたJSONは空扱い
		_ = json.Unmarshal([]byte(cfg.Headers), &headers)
	}

	return ConfigResponse{
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
		Headers:  headers,
	}, nil
}
