package repository

import (
	"app/internal/domain/model"
	"context"
)

// 外部商品サービス設定の永続化。有効な設定は常に1件。
type ProductConfigRepository interface {
	FindActive(ctx context.Context) (model.ProductServiceConfig, error)
	// 既存の有効設定を無効化してから保存する
	Save(ctx context.Context, cfg model.ProductServiceConfig) (model.ProductServiceConfig, error)
}
