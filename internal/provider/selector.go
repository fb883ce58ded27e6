package provider

// Config 供应商凭证与模型，由启动流程从应用配置注入
type Config struct {
	OpenAIKey        string
	OpenAIBaseURL    string
	OpenAITextModel  string
	OpenAIImageModel string
	GeminiKey        string
	GeminiModel      string
}

// Selector 根据凭证决定每次请求使用的供应商
// 偏好顺序: openai > gemini > mock，不缓存调用结果，不做健康检查
type Selector struct {
	openAI TextGenerator
	gemini TextGenerator
	images ImageGenerator

	openAIModels []string
	geminiModels []string
}

// NewSelector 按凭证创建适配器，缺失凭证的供应商视为不可用
func NewSelector(cfg Config) *Selector {
	s := &Selector{
		openAIModels: []string{orDefault(cfg.OpenAITextModel, defaultOpenAITextModel), orDefault(cfg.OpenAIImageModel, defaultOpenAIImageModel)},
		geminiModels: []string{orDefault(cfg.GeminiModel, defaultGeminiModel)},
	}

	if oa, err := NewOpenAIProvider(OpenAIOptions{
		APIKey:     cfg.OpenAIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		TextModel:  cfg.OpenAITextModel,
		ImageModel: cfg.OpenAIImageModel,
	}); err == nil {
		s.openAI = oa
		s.images = oa
	}
	if gm, err := NewGeminiProvider(GeminiOptions{
		APIKey: cfg.GeminiKey,
		Model:  cfg.GeminiModel,
	}); err == nil {
		s.gemini = gm
	}
	return s
}

// NewSelectorFrom 直接注入适配器，nil 表示该供应商不可用
func NewSelectorFrom(openAI, gemini TextGenerator, images ImageGenerator) *Selector {
	return &Selector{
		openAI:       openAI,
		gemini:       gemini,
		images:       images,
		openAIModels: []string{defaultOpenAITextModel, defaultOpenAIImageModel},
		geminiModels: []string{defaultGeminiModel},
	}
}

// Chain 当前可用的供应商偏好列表，末尾总是 mock
func (s *Selector) Chain() []Name {
	chain := make([]Name, 0, 3)
	if s.openAI != nil {
		chain = append(chain, OpenAI)
	}
	if s.gemini != nil {
		chain = append(chain, Gemini)
	}
	return append(chain, Mock)
}

// Primary 返回首选文本供应商，ok=false 表示只能使用静态文案
func (s *Selector) Primary() (TextGenerator, bool) {
	if s.openAI != nil {
		return s.openAI, true
	}
	if s.gemini != nil {
		return s.gemini, true
	}
	return nil, false
}

// Resolve 单条生成的供应商选择：指定了供应商但缺少凭证时直接使用静态文案
func (s *Selector) Resolve(preferred Name) (TextGenerator, bool) {
	switch preferred {
	case OpenAI:
		return s.openAI, s.openAI != nil
	case Gemini:
		return s.gemini, s.gemini != nil
	case "":
		return s.Primary()
	default:
		return nil, false
	}
}

// Images 图片生成只由 OpenAI 提供
func (s *Selector) Images() (ImageGenerator, bool) {
	return s.images, s.images != nil
}

// ProviderStatus 单个供应商的可用状态
type ProviderStatus struct {
	Available bool     `json:"available"`
	Features  []string `json:"features"`
	Models    []string `json:"models"`
	Preferred bool     `json:"preferred"`
}

// Status 供应商状态汇总
type Status struct {
	Providers           map[Name]ProviderStatus `json:"providers"`
	RecommendedProvider Name                    `json:"recommended_provider"`
}

func (s *Selector) Status() Status {
	openAIAvailable := s.openAI != nil
	geminiAvailable := s.gemini != nil

	recommended := s.Chain()[0]
	return Status{
		Providers: map[Name]ProviderStatus{
			OpenAI: {
				Available: openAIAvailable,
				Features:  []string{"text_generation", "image_generation", "structured_outputs"},
				Models:    s.openAIModels,
				Preferred: openAIAvailable,
			},
			Gemini: {
				Available: geminiAvailable,
				Features:  []string{"text_generation"},
				Models:    s.geminiModels,
				Preferred: !openAIAvailable && geminiAvailable,
			},
		},
		RecommendedProvider: recommended,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
