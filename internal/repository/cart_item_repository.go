package repository

import (
	"app/internal/domain/model"
	"context"
)

// ベンダーごとの小計（SUM(price*quantity)）
type VendorSubtotal struct {
	VendorID   string
	VendorName string
	Subtotal   float64
}

// カート明細の永続化だけを約束。業務ルールは持たない。
type CartItemRepository interface {
	FindBySessionAndProduct(ctx context.Context, sessionID string, productID string) (model.CartItem, error)
	FindBySessionAndID(ctx context.Context, sessionID string, itemID int64) (model.CartItem, error)
	Add(ctx context.Context, item model.CartItem) (model.CartItem, error)
	// 同一商品は数量をプラス
	IncrementQuantity(ctx context.Context, itemID int64, delta int64) error
	UpdateQuantity(ctx context.Context, itemID int64, qty int64) error
	// 新しく追加した順
	ListBySession(ctx context.Context, sessionID string) ([]model.CartItem, error)
	DeleteByID(ctx context.Context, itemID int64) error
	// 削除件数を返す
	ClearSession(ctx context.Context, sessionID string) (int64, error)
	VendorSubtotals(ctx context.Context, sessionID string) ([]VendorSubtotal, error)
}
