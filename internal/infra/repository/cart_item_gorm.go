package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// (session, product) の明細を取得
func (r *CartItemGormRepository) FindBySessionAndProduct(ctx context.Context, sessionID string, productID string) (model.CartItem, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// セッション所属の明細を取得（他セッションの明細はNotFound扱い）
func (r *CartItemGormRepository) FindBySessionAndID(ctx context.Context, sessionID string, itemID int64) (model.CartItem, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", itemID, sessionID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 明細を新規作成
func (r *CartItemGormRepository) Add(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 明細の数量をプラス
func (r *CartItemGormRepository) IncrementQuantity(ctx context.Context, itemID int64, delta int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", delta))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細の数量を更新
func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, itemID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// セッションの明細を一覧取得（新しい順）
func (r *CartItemGormRepository) ListBySession(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id desc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}

	return items, nil
}

// 明細を削除
func (r *CartItemGormRepository) DeleteByID(ctx context.Context, itemID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.CartItem{}, itemID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// セッションの明細を全削除して件数を返す
func (r *CartItemGormRepository) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ベンダーごとの小計を集計
func (r *CartItemGormRepository) VendorSubtotals(ctx context.Context, sessionID string) ([]repo.VendorSubtotal, error) {
	var rows []repo.VendorSubtotal

	err := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Select("vendor_id, vendor_name, SUM(price * quantity) as subtotal").
		Where("session_id = ?", sessionID).
		Group("vendor_id, vendor_name").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}
