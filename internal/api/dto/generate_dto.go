package dto

import "github.com/Fabriciocypreste/novonovo/pkg/utils"

// ==================== 请求 DTO ====================

// GenerateContentRequest 按主题批量生成内容
// content_types 与 platforms 只做校验，每个主题固定返回 post/video/landing 三项
type GenerateContentRequest struct {
	Themes         []string `json:"themes" binding:"required,min=1,dive,notblank"`
	ContentTypes   []string `json:"content_types" binding:"omitempty,dive,content_type"`
	Platforms      []string `json:"platforms" binding:"omitempty,dive,platform"`
	ReferenceImage string   `json:"reference_image" binding:"omitempty,url"`
}

// GeneratePostsRequest 批量生成帖子
type GeneratePostsRequest struct {
	Topic    string `json:"topic" binding:"required,notblank"`
	Style    string `json:"style"`                                  // 默认 profissional
	Platform string `json:"platform" binding:"omitempty,platform"`  // 默认 instagram
	Count    int    `json:"count" binding:"omitempty,min=1,max=50"` // 默认 10
}

// GenerateSingleRequest 单条生成
type GenerateSingleRequest struct {
	Theme    string `json:"theme"`
	Type     string `json:"type"`
	Platform string `json:"platform"`
	Provider string `json:"provider" binding:"omitempty,oneof=openai gemini"`

	CustomPrompt      string `json:"custom_prompt"`
	CustomPromptCamel string `json:"customPrompt"`
}

// Prompt 兼容两种字段写法
func (r *GenerateSingleRequest) Prompt() string {
	if r.CustomPrompt != "" {
		return r.CustomPrompt
	}
	return r.CustomPromptCamel
}

// GenerateImageRequest 图片生成，quality/style 非法值会被收敛而不是拒绝
type GenerateImageRequest struct {
	Prompt   string `json:"prompt"`
	Theme    string `json:"theme"`
	Platform string `json:"platform"`
	Style    string `json:"style"`
	Quality  string `json:"quality"`
}

// GenerateImageWithReferenceRequest 参考图生成图片
type GenerateImageWithReferenceRequest struct {
	Prompt   string `json:"prompt" binding:"required,notblank"`
	Style    string `json:"style"`
	Platform string `json:"platform"`

	ReferenceImageURL      string `json:"reference_image_url" binding:"omitempty,url"`
	ReferenceImageURLCamel string `json:"referenceImageUrl" binding:"omitempty,url"`
}

func (r *GenerateImageWithReferenceRequest) ReferenceURL() string {
	if r.ReferenceImageURL != "" {
		return r.ReferenceImageURL
	}
	return r.ReferenceImageURLCamel
}

// GenerateVideoWithReferenceRequest 参考图生成视频脚本
type GenerateVideoWithReferenceRequest struct {
	Topic    string `json:"topic" binding:"required,notblank"`
	Style    string `json:"style"`
	Platform string `json:"platform"`
	Duration string `json:"duration"`

	ReferenceImageURL      string `json:"reference_image_url" binding:"omitempty,url"`
	ReferenceImageURLCamel string `json:"referenceImageUrl" binding:"omitempty,url"`
}

func (r *GenerateVideoWithReferenceRequest) ReferenceURL() string {
	if r.ReferenceImageURL != "" {
		return r.ReferenceImageURL
	}
	return r.ReferenceImageURLCamel
}

// ==================== 响应 DTO ====================

// GeneratedItem 单项生成结果，不落库
type GeneratedItem struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Platform string `json:"platform"`
	Provider string `json:"provider"`
}

// ThemeContent 一个主题的三项内容
type ThemeContent struct {
	Theme   string        `json:"theme"`
	Post    GeneratedItem `json:"post"`
	Video   GeneratedItem `json:"video"`
	Landing GeneratedItem `json:"landing"`
}

// GenerateContentResult 批量内容结果
type GenerateContentResult struct {
	Items    []ThemeContent
	Provider string
	Message  string
}

// Engagement 互动数据占位值，随机生成，不代表真实数据
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Rate     int `json:"rate"`
}

// PostSuggestion 单条帖子
type PostSuggestion struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Hashtags   string     `json:"hashtags"`
	Engagement Engagement `json:"engagement"`
	Provider   string     `json:"provider"`
}

// GeneratePostsResult 批量帖子结果
type GeneratePostsResult struct {
	Posts    []PostSuggestion
	Provider string
}

// SingleContent 单条生成结果
type SingleContent struct {
	Content     string `json:"content"`
	Theme       string `json:"theme"`
	Type        string `json:"type"`
	Platform    string `json:"platform"`
	Provider    string `json:"provider"`
	GeneratedAt string `json:"generated_at"`
}

// GeneratedImage 图片生成结果
type GeneratedImage struct {
	ImageURL     string           `json:"image_url"`
	Prompt       string           `json:"prompt"`
	Theme        string           `json:"theme,omitempty"`
	Platform     string           `json:"platform,omitempty"`
	Style        string           `json:"style"`
	Quality      string           `json:"quality"`
	Size         string           `json:"size"`
	ReferenceURL string           `json:"reference_url,omitempty"`
	Reference    *utils.ImageInfo `json:"reference,omitempty"`
	GeneratedAt  string           `json:"generated_at"`
	Provider     string           `json:"provider"`
}

// VideoScript 视频脚本结果
type VideoScript struct {
	Title        string           `json:"title"`
	Script       string           `json:"script"`
	VisualNotes  string           `json:"visual_notes"`
	Hashtags     string           `json:"hashtags"`
	ReferenceURL string           `json:"reference_url,omitempty"`
	Reference    *utils.ImageInfo `json:"reference,omitempty"`
	Style        string           `json:"style,omitempty"`
	Platform     string           `json:"platform,omitempty"`
	Duration     string           `json:"duration,omitempty"`
	GeneratedAt  string           `json:"generated_at"`
	Provider     string           `json:"provider"`
}
