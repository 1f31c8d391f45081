package gateway

import (
	"app/internal/cache"
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// 外部商品サービスが未設定
var ErrConfigurationMissing = errors.New("product service is not configured")

// ProductGateway は外部商品サービスから商品スナップショットを取得する。
// キャッシュ優先。通信エラー・不正JSON・非2xxはすべて「見つからない」に畳む。
type ProductGateway struct {
	configRepo repo.ProductConfigRepository
	cache      *cache.ProductCache
	client     *http.Client
}

// DI
func NewProductGateway(configRepo repo.ProductConfigRepository, c *cache.ProductCache, timeout time.Duration) *ProductGateway {
	return &ProductGateway{
		configRepo: configRepo,
		cache:      c,
		client:     &http.Client{Timeout: timeout},
	}
}

// FetchProduct は商品を取得する（キャッシュ→外部API）。
// 見つからない・上流障害は found=false。設定が無い場合だけerrorを返す。
func (g *ProductGateway) FetchProduct(ctx context.Context, productID string) (model.Product, bool, error) {
	if p, ok := g.cache.Get(productID); ok {
		return p, true, nil
	}

	cfg, err := g.configRepo.FindActive(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, false, ErrConfigurationMissing
	}
	if err != nil {
		return model.Product{}, false, err
	}
	if cfg.Endpoint == "" {
		return model.Product{}, false, ErrConfigurationMissing
	}

	url := strings.TrimRight(cfg.Endpoint, "/") + "/" + productID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Product{}, false, nil
	}

	//設定済みの追加ヘッダー
	if cfg.Headers != "" {
		var headers map[string]string
		if err := json.Unmarshal([]byte(cfg.Headers), &headers); err == nil {
			for k, v := range headers {
				req.Header.Set(k, v)
			}
		}
	}
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey))
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return model.Product{}, false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Product{}, false, nil
	}

	var p model.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return model.Product{}, false, nil
	}
	if p.ID == "" {
		p.ID = productID
	}

	g.cache.Put(productID, p)
	return p, true, nil
}

// Configure は接続設定を保存して、古い接続先のキャッシュを消す。
func (g *ProductGateway) Configure(ctx context.Context, endpoint string, apiKey string, headers map[string]string) error {
	headersJSON := ""
	if len(headers) > 0 {
		b, err := json.Marshal(headers)
		if err != nil {
			return err
		}
		headersJSON = string(b)
	}

	cfg := model.ProductServiceConfig{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Headers:  headersJSON,
	}

	if _, err := g.configRepo.Save(ctx, cfg); err != nil {
		return err
	}

	//古い接続先のスナップショットが残らないように
	g.cache.Clear()
	return nil
}
