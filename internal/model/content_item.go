package model

import "time"

// ==================== 状态常量 ====================

const (
	ContentStatusDraft     = "draft"
	ContentStatusScheduled = "scheduled"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

// ==================== 内容类型 ====================

const (
	ContentTypePost        = "post"
	ContentTypeVideo       = "video"
	ContentTypeLandingPage = "landing_page"
	ContentTypeImage       = "image"
)

// ContentItem 项目下的一条内容
type ContentItem struct {
	BaseModel

	ProjectID   int64   `gorm:"index;not null;comment:项目ID" json:"project_id"`
	Title       string  `gorm:"size:255;not null;comment:标题" json:"title"`
	ContentType string  `gorm:"size:32;index;not null;comment:内容类型" json:"content_type"`
	Platform    *string `gorm:"size:32;index;comment:发布平台" json:"platform"`

	// 原始文本或带 type 字段的 JSON，见 content_payload.go
	ContentData *string `gorm:"type:text;comment:内容数据" json:"content_data"`

	ScheduledAt        *time.Time `gorm:"comment:计划发布时间" json:"scheduled_at"`
	Status             string     `gorm:"size:32;index;default:draft;comment:状态" json:"status"`
	EngagementEstimate *string    `gorm:"size:255;comment:互动预估" json:"engagement_estimate"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

// ==================== 发布平台 ====================

// KnownPlatforms 允许的平台标识
var KnownPlatforms = map[string]bool{
	"instagram": true,
	"facebook":  true,
	"twitter":   true,
	"linkedin":  true,
	"youtube":   true,
	"tiktok":    true,
	"pinterest": true,
	"web":       true,
	"blog":      true,
	"email":     true,
}

// IsContentType 判断是否为可持久化的内容类型
func IsContentType(t string) bool {
	switch t {
	case ContentTypePost, ContentTypeVideo, ContentTypeLandingPage, ContentTypeImage:
		return true
	}
	return false
}
