package model

import "time"

// カートセッション。IDはURLセーフなランダムトークン。
// ストアには原則1つだけ存在する（get-or-create）。
type CartSession struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
