package provider

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAITextModel  = "gpt-4o-mini"
	defaultOpenAIImageModel = openai.CreateImageModelDallE3
)

// OpenAIOptions OpenAI 适配器配置
type OpenAIOptions struct {
	APIKey     string
	BaseURL    string // 为空时使用官方地址
	TextModel  string
	ImageModel string
	HTTPClient *http.Client
}

// OpenAIProvider 基于 go-openai 的文本与图片适配器
type OpenAIProvider struct {
	client     *openai.Client
	textModel  string
	imageModel string
}

// NewOpenAIProvider 创建 OpenAI 适配器
func NewOpenAIProvider(opts OpenAIOptions) (*OpenAIProvider, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}

	cfg := openai.DefaultConfig(strings.TrimSpace(opts.APIKey))
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	// 不设置超时，慢请求直接拖慢响应
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}

	textModel := opts.TextModel
	if textModel == "" {
		textModel = defaultOpenAITextModel
	}
	imageModel := opts.ImageModel
	if imageModel == "" {
		imageModel = defaultOpenAIImageModel
	}

	return &OpenAIProvider{
		client:     openai.NewClientWithConfig(cfg),
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

func (p *OpenAIProvider) Name() Name { return OpenAI }

// GenerateText 调用 chat completions，返回第一个 choice 的文本
func (p *OpenAIProvider) GenerateText(ctx context.Context, systemPrompt, userPrompt string, opts TextOptions) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.textModel,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", &CallError{Provider: OpenAI, Op: "chat completion", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyContent
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}

// GenerateImage 调用图片生成接口，返回图片 URL
func (p *OpenAIProvider) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (string, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          p.imageModel,
		N:              1,
		Size:           string(opts.Size),
		Quality:        string(opts.Quality),
		Style:          string(opts.Style),
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", &CallError{Provider: OpenAI, Op: "image generation", Err: err}
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrEmptyContent
	}
	return resp.Data[0].URL, nil
}

var (
	_ TextGenerator  = (*OpenAIProvider)(nil)
	_ ImageGenerator = (*OpenAIProvider)(nil)
)
