package provider

import (
	"context"
	"errors"
	"fmt"
)

// Name 供应商标识，同时作为响应中的 provider 字段
type Name string

const (
	OpenAI   Name = "openai"
	Gemini   Name = "gemini"
	Mock     Name = "mock"     // 无可用凭证时的静态文案
	Fallback Name = "fallback" // 在线调用失败后替换的静态文案
)

// TextOptions 文本生成参数
type TextOptions struct {
	Temperature float32
	MaxTokens   int
}

// ImageOptions 图片生成参数，取值见 image.go
type ImageOptions struct {
	Size    ImageSize
	Quality ImageQuality
	Style   ImageStyle
}

// TextGenerator 统一的文本生成契约
type TextGenerator interface {
	Name() Name
	GenerateText(ctx context.Context, systemPrompt, userPrompt string, opts TextOptions) (string, error)
}

// ImageGenerator 统一的图片生成契约，返回图片 URL
type ImageGenerator interface {
	Name() Name
	GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (string, error)
}

// ErrEmptyContent 供应商调用成功但没有产出内容
var ErrEmptyContent = errors.New("provider returned empty content")

// CallError 供应商调用本身失败（网络、配额、响应格式错误等）
type CallError struct {
	Provider Name
	Op       string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// IsCallError 判断是否为供应商调用失败
func IsCallError(err error) bool {
	var ce *CallError
	return errors.As(err, &ce)
}
