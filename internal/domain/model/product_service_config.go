package model

import "time"

// 外部商品サービスの接続設定。有効なのは常に1件だけ。
// HeadersはJSON文字列で保存する。
type ProductServiceConfig struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Endpoint  string    `gorm:"type:text;not null" json:"endpoint"`
	APIKey    string    `gorm:"type:text" json:"api_key,omitempty"`
	Headers   string    `gorm:"type:text" json:"headers,omitempty"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
