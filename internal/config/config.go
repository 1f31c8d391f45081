package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	CacheTTLSeconds int // 商品キャッシュのTTL（秒）
	CacheMaxSize    int // 商品キャッシュの最大件数

	ProductServiceTimeoutSeconds int // 外部商品APIのタイムアウト（秒）

	GenerationConcurrency int // バッチ生成の同時実行上限
}

// Loadは環境変数（未設定はデフォルト）
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),
	}

	ttl, err := atoiWithDefault("CACHE_TTL_SECONDS", 300)
	if err != nil {
		return Config{}, err
	}
	cfg.CacheTTLSeconds = ttl

	size, err := atoiWithDefault("CACHE_MAX_SIZE", 1000)
	if err != nil {
		return Config{}, err
	}
	cfg.CacheMaxSize = size

	timeout, err := atoiWithDefault("PRODUCT_SERVICE_TIMEOUT_SECONDS", 10)
	if err != nil {
		return Config{}, err
	}
	cfg.ProductServiceTimeoutSeconds = timeout

	conc, err := atoiWithDefault("GENERATION_CONCURRENCY", 5)
	if err != nil {
		return Config{}, err
	}
	cfg.GenerationConcurrency = conc

	//値チェック
	if cfg.CacheTTLSeconds <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL_SECONDS must be positive")
	}
	if cfg.CacheMaxSize <= 0 {
		return Config{}, fmt.Errorf("CACHE_MAX_SIZE must be positive")
	}
	if cfg.ProductServiceTimeoutSeconds <= 0 {
		return Config{}, fmt.Errorf("PRODUCT_SERVICE_TIMEOUT_SECONDS must be positive")
	}
	if cfg.GenerationConcurrency <= 0 {
		return Config{}, fmt.Errorf("GENERATION_CONCURRENCY must be positive")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiWithDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
