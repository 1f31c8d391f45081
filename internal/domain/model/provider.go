package model

import "time"

type ProviderType string

const (
	ProviderTypeOpenAI ProviderType = "openai"
	ProviderTypeAzure  ProviderType = "azure_openai"
)

// AIプロバイダの接続設定
type Provider struct {
	ID           int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	ProviderType ProviderType `gorm:"type:varchar(32);not null" json:"provider_type"`
	APIKey       string       `gorm:"type:text;not null" json:"-"`
	APIBase      string       `gorm:"type:text" json:"api_base,omitempty"`
	Model        string       `gorm:"type:varchar(128);not null" json:"model"`
	IsActive     bool         `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
