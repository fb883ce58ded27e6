package dto

// ==================== 统一响应 ====================

// Response 所有接口的统一响应结构
type Response struct {
	Success  bool   `json:"success"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
	Provider string `json:"provider,omitempty"`

	// 仅图片生成失败时返回
	FallbackImage string `json:"fallback_image,omitempty"`
}

// HealthResponse 健康检查
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
