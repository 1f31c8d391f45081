package repository

import (
	"app/internal/domain/model"
	"context"
)

// 割引コードの参照。codeは大文字小文字を区別しない。
type DiscountCodeRepository interface {
	FindByCode(ctx context.Context, code string) (model.DiscountCode, error)
	IncrementUsage(ctx context.Context, code string) error
}
