package cache

import (
	"app/internal/domain/model"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ProductCache は商品スナップショットの有限TTLキャッシュ。
// 上限到達時はLRUで追い出す。並行アクセス可。
type ProductCache struct {
	lru *expirable.LRU[string, model.Product]
}

// DI
func NewProductCache(maxSize int, ttl time.Duration) *ProductCache {
	return &ProductCache{
		lru: expirable.NewLRU[string, model.Product](maxSize, nil, ttl),
	}
}

func (c *ProductCache) Get(productID string) (model.Product, bool) {
	return c.lru.Get(productID)
}

// 既存エントリは丸ごと置き換える（部分更新はしない）
func (c *ProductCache) Put(productID string, p model.Product) {
	c.lru.Add(productID, p)
}

// 接続先の設定が変わったら必ず呼ぶ
func (c *ProductCache) Clear() {
	c.lru.Purge()
}

func (c *ProductCache) Len() int {
	return c.lru.Len()
}
