package usecase

import (
	"app/internal/domain/model"
	"app/internal/pricing"
	repo "app/internal/repository"
	"context"
	"errors"
	"time"
)

// 適用不可の理由（機械可読）
const (
	ReasonNotFound          = "not_found"
	ReasonInactive          = "inactive"
	ReasonExpired           = "expired"
	ReasonUsageLimitReached = "usage_limit_reached"
	ReasonBelowMinimumOrder = "below_minimum_order"
)

type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// DiscountRegistry は割引コードの参照と適用可否を担当。
// 判定はフェイルクローズ（疑わしきは不可）。
type DiscountRegistry struct {
	codes repo.DiscountCodeRepository
}

// DI
func NewDiscountRegistry(codes repo.DiscountCodeRepository) *DiscountRegistry {
	return &DiscountRegistry{codes: codes}
}

// Lookup はコードを取得（大文字小文字を区別しない）。
func (r *DiscountRegistry) Lookup(ctx context.Context, code string) (model.DiscountCode, error) {
	return r.codes.FindByCode(ctx, code)
}

// IsEligible はカート小計に対してコードが使えるかを判定する。
// 最小スキーマ（拡張項目が全部NULL）では is_active だけで決まる。
func (r *DiscountRegistry) IsEligible(ctx context.Context, code string, cartSubtotal float64) (EligibilityResult, error) {
	dc, err := r.codes.FindByCode(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return EligibilityResult{Eligible: false, Reason: ReasonNotFound}, nil
	}
	if err != nil {
		return EligibilityResult{}, err
	}

	if !dc.IsActive {
		return EligibilityResult{Eligible: false, Reason: ReasonInactive}, nil
	}
	if dc.ExpiresAt != nil && time.Now().After(*dc.ExpiresAt) {
		return EligibilityResult{Eligible: false, Reason: ReasonExpired}, nil
	}
	if dc.UsageLimit != nil && dc.UsageCount >= *dc.UsageLimit {
		return EligibilityResult{Eligible: false, Reason: ReasonUsageLimitReached}, nil
	}
	if dc.MinOrderAmount != nil && cartSubtotal < *dc.MinOrderAmount {
		return EligibilityResult{Eligible: false, Reason: ReasonBelowMinimumOrder}, nil
	}

	return EligibilityResult{Eligible: true}, nil
}

// ComputeDiscountAmount は割引額を計算する（上限があれば頭打ち、2桁丸め）。
func ComputeDiscountAmount(percentage float64, subtotal float64, maxCap *float64) float64 {
	amount := subtotal * percentage / 100
	if maxCap != nil && amount > *maxCap {
		amount = *maxCap
	}
	return pricing.Round2(amount)
}
