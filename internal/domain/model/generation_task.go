package model

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusRunning   TaskStatus = "RUNNING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusFailed    TaskStatus = "FAILED"
)

// コンテンツ生成タスク。
// 一度RUNNINGになったタスクはキャンセルできない。
type GenerationTask struct {
	ID           string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	TemplateID   int64             `gorm:"not null;index" json:"template_id"`
	ProviderID   int64             `gorm:"not null;index" json:"provider_id"`
	Status       TaskStatus        `gorm:"type:varchar(20);not null;index" json:"status"`
	Variables    map[string]string `gorm:"serializer:json" json:"variables"`
	Output       string            `gorm:"type:text" json:"output,omitempty"`
	QualityScore *int              `json:"quality_score,omitempty"`
	ErrorMessage string            `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}
