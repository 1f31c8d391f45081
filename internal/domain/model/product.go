package model

// 外部商品サービスから取得する商品スナップショット。
// DBには保存せず、キャッシュにのみ載る。
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int64   `json:"stock"`
	VendorID   string  `json:"vendor_id"`
	VendorName string  `json:"vendor_name"`
	ImageURL   string  `json:"image_url,omitempty"`
}
