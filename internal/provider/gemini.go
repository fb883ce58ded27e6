package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiOptions Gemini 适配器配置
type GeminiOptions struct {
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// GeminiProvider 基于 generative-ai-go 的文本适配器
type GeminiProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiProvider 创建 Gemini 适配器
func NewGeminiProvider(opts GeminiOptions) (*GeminiProvider, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{
		apiKey:     strings.TrimSpace(opts.APIKey),
		model:      model,
		httpClient: opts.HTTPClient,
	}, nil
}

func (p *GeminiProvider) Name() Name { return Gemini }

// GenerateText 每次调用创建客户端，调用结束即关闭
func (p *GeminiProvider) GenerateText(ctx context.Context, systemPrompt, userPrompt string, opts TextOptions) (string, error) {
	clientOpts := []option.ClientOption{option.WithAPIKey(p.apiKey)}
	if p.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(p.httpClient))
	}

	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return "", &CallError{Provider: Gemini, Op: "client init", Err: err}
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	if opts.Temperature > 0 {
		model.SetTemperature(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	if systemPrompt != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", &CallError{Provider: Gemini, Op: "generate content", Err: err}
	}

	text := strings.TrimSpace(extractGeminiText(resp))
	if text == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}

// extractGeminiText 拼接第一个候选中的全部文本片段
func extractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

func (p *GeminiProvider) String() string {
	return fmt.Sprintf("gemini(%s)", p.model)
}

var _ TextGenerator = (*GeminiProvider)(nil)
