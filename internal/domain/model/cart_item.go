package model

import "time"

// カートの明細
// (session_id, product_id) につき1行。同一商品は数量加算で1行に保つ。
// 価格は追加時点のスナップショットを保存。
type CartItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID   string    `gorm:"type:varchar(64);not null;index" json:"session_id"`
	ProductID   string    `gorm:"type:varchar(64);not null;index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	VendorID    string    `gorm:"type:varchar(64);not null;index" json:"vendor_id"`
	VendorName  string    `gorm:"type:varchar(255)" json:"vendor_name"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
