package pricing

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"math"
)

const (
	// ベンダー小計がこの額以上なら送料無料（ちょうど800も無料）
	FreeShippingThreshold = 800.0
	// ベンダーごとの送料
	ShippingFeePerVendor = 100.0
)

// 計算結果。各値は小数2桁に丸め済み。
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// 割引コードの参照だけを約束
type DiscountSource interface {
	FindByCode(ctx context.Context, code string) (model.DiscountCode, error)
}

type Engine struct {
	discounts DiscountSource
}

// DI
func NewEngine(discounts DiscountSource) *Engine {
	return &Engine{discounts: discounts}
}

// 小数2桁への丸め
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals は明細から小計・送料・割引・合計を計算する。
// 丸めは最終値にだけかける（明細ごとには丸めない）。
// 不明・無効なコードは割引0として扱う（エラーにしない）。
func (e *Engine) ComputeTotals(ctx context.Context, items []model.CartItem, discountCode string) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, nil
	}

	//小計（明細の積を丸めずに積算）
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}

	//ベンダーごとの小計→送料
	vendorSubtotals := map[string]float64{}
	for _, it := range items {
		vendorSubtotals[it.VendorID] += it.Price * float64(it.Quantity)
	}

	var shipping float64
	for _, vs := range vendorSubtotals {
		if vs < FreeShippingThreshold {
			shipping += ShippingFeePerVendor
		}
	}

	roundedSubtotal := Round2(subtotal)

	//割引
	var discount float64
	if discountCode != "" {
		dc, err := e.discounts.FindByCode(ctx, discountCode)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return Totals{}, err
		}
		if err == nil && dc.IsActive {
			discount = roundedSubtotal * dc.Percentage / 100
			if dc.MaxDiscountAmount != nil && discount > *dc.MaxDiscountAmount {
				discount = *dc.MaxDiscountAmount
			}
			discount = Round2(discount)
		}
	}

	return Totals{
		Subtotal: roundedSubtotal,
		Discount: discount,
		Shipping: Round2(shipping),
		Total:    Round2(roundedSubtotal - discount + shipping),
	}, nil
}
