package model

import "time"

// 出力品質チェックのルール。テンプレートごとにJSONで保存。
type QualityRules struct {
	RequireJSONFormat    bool      `json:"require_json_format,omitempty"`
	RequiredFields       []string  `json:"required_fields,omitempty"`
	ValidClassifications []string  `json:"valid_classifications,omitempty"`
	ConfidenceRange      []float64 `json:"confidence_range,omitempty"`
	MaxReasoningLength   *int      `json:"max_reasoning_length,omitempty"`
}

// 生成プロンプトのテンプレート。
// Contentの {{name}} をVariablesの値で置換して使う。
type Template struct {
	ID           int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	Description  string       `gorm:"type:text" json:"description,omitempty"`
	Content      string       `gorm:"type:text;not null" json:"content"`
	Variables    []string     `gorm:"serializer:json" json:"variables"`
	QualityRules QualityRules `gorm:"serializer:json" json:"quality_rules"`
	CreatedAt    time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
