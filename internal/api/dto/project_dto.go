package dto

import (
	"encoding/json"
	"time"
)

// ==================== 请求 DTO ====================

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description *string `json:"description"`
	Theme       *string `json:"theme"`
	ProjectType *string `json:"project_type"`
}

// CreateContentItemRequest 创建内容请求
// project_id 以路径参数为准，请求体中的值被忽略
type CreateContentItemRequest struct {
	ProjectID   *int64  `json:"project_id"`
	Title       string  `json:"title" binding:"required,notblank"`
	ContentType string  `json:"content_type" binding:"required,content_type"`
	Platform    *string `json:"platform" binding:"omitempty,platform"`

	// 字符串或 JSON 对象
	ContentData json.RawMessage `json:"content_data"`

	ScheduledAt        *time.Time `json:"scheduled_at"`
	Status             string     `json:"status" binding:"omitempty,oneof=draft scheduled published archived"`
	EngagementEstimate *string    `json:"engagement_estimate"`
}
