package model

import "time"

// 割引コード。codeは大文字小文字を区別しない。
// 拡張項目（最低注文額・上限額・利用回数・期限）はNULLなら制限なし。
type DiscountCode struct {
	Code              string     `gorm:"type:varchar(64);primaryKey" json:"code"`
	Percentage        float64    `gorm:"not null" json:"percentage"`
	IsActive          bool       `gorm:"not null;default:true" json:"is_active"`
	MinOrderAmount    *float64   `json:"min_order_amount,omitempty"`
	MaxDiscountAmount *float64   `json:"max_discount_amount,omitempty"`
	UsageLimit        *int64     `json:"usage_limit,omitempty"`
	UsageCount        int64      `gorm:"not null;default:0" json:"usage_count"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	CreatedAt         time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
}
