package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sourcegraph/conc/iter"
	"golang.org/x/sync/errgroup"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/model"
	"github.com/Fabriciocypreste/novonovo/internal/provider"
	"github.com/Fabriciocypreste/novonovo/pkg/logger"
	"github.com/Fabriciocypreste/novonovo/pkg/utils"
)

const (
	defaultPostStyle    = "profissional"
	defaultPostPlatform = "instagram"
	defaultPostCount    = 10
)

// ==================== 服务定义 ====================

// GenerationService 内容生成编排：选择供应商、并发调用、失败时替换为静态文案
type GenerationService struct {
	selector    *provider.Selector
	probe       *resty.Client
	logger      *logger.Logger
	concurrency int

	// 可替换，测试时固定
	intn func(n int) int
	now  func() time.Time
}

// NewGenerationService 创建生成服务
func NewGenerationService(selector *provider.Selector, probe *resty.Client, log *logger.Logger, concurrency int) *GenerationService {
	if concurrency <= 0 {
		concurrency = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	if probe == nil {
		probe = utils.NewPublicHTTPClient(10 * time.Second)
	}
	return &GenerationService{
		selector:    selector,
		probe:       probe,
		logger:      log,
		concurrency: concurrency,
		intn:        rand.IntN,
		now:         time.Now,
	}
}

// Status 供应商状态
func (s *GenerationService) Status() provider.Status {
	return s.selector.Status()
}

// ==================== 批量内容 ====================

// GenerateContent 每个主题固定产出 post/video/landing 三项
// 每项独立尝试，失败只影响该项；输出顺序与输入主题顺序一致
func (s *GenerationService) GenerateContent(ctx context.Context, req *dto.GenerateContentRequest) (*dto.GenerateContentResult, error) {
	gen, ok := s.selector.Primary()
	if !ok {
		items := make([]dto.ThemeContent, len(req.Themes))
		for i, theme := range req.Themes {
			items[i] = mockThemeContent(theme, provider.Mock)
		}
		return &dto.GenerateContentResult{
			Items:    items,
			Provider: string(provider.Mock),
			Message:  fmt.Sprintf("Generated content for %d themes (mock data)", len(req.Themes)),
		}, nil
	}

	mapper := iter.Mapper[string, dto.ThemeContent]{MaxGoroutines: s.concurrency}
	items := mapper.Map(req.Themes, func(theme *string) dto.ThemeContent {
		return s.generateTheme(ctx, gen, *theme)
	})

	return &dto.GenerateContentResult{
		Items:    items,
		Provider: string(gen.Name()),
		Message:  fmt.Sprintf("Generated content for %d themes using %s", len(req.Themes), displayName(gen.Name())),
	}, nil
}

func (s *GenerationService) generateTheme(ctx context.Context, gen provider.TextGenerator, theme string) dto.ThemeContent {
	attempt := func(contentType, platform string, p promptPair) dto.GeneratedItem {
		res := provider.AttemptText(ctx, gen, p.System, p.User, p.Opts, provider.Fallback, func() string {
			return provider.MockContent(contentType, theme)
		})
		if res.Degraded() {
			s.logger.Warn("内容生成降级", "provider", gen.Name(), "theme", theme, "type", contentType, "error", res.Err)
		}
		return dto.GeneratedItem{
			Type:     contentType,
			Content:  res.Value,
			Platform: platform,
			Provider: string(res.Provider),
		}
	}

	return dto.ThemeContent{
		Theme:   theme,
		Post:    attempt(model.ContentTypePost, "instagram", contentPostPrompt(theme)),
		Video:   attempt(model.ContentTypeVideo, "youtube", contentVideoPrompt(theme)),
		Landing: attempt(model.ContentTypeLandingPage, "web", contentLandingPrompt(theme)),
	}
}

func mockThemeContent(theme string, name provider.Name) dto.ThemeContent {
	item := func(contentType, platform string) dto.GeneratedItem {
		return dto.GeneratedItem{
			Type:     contentType,
			Content:  provider.MockContent(contentType, theme),
			Platform: platform,
			Provider: string(name),
		}
	}
	return dto.ThemeContent{
		Theme:   theme,
		Post:    item(model.ContentTypePost, "instagram"),
		Video:   item(model.ContentTypeVideo, "youtube"),
		Landing: item(model.ContentTypeLandingPage, "web"),
	}
}

// ==================== 批量帖子 ====================

// GeneratePosts 生成 count 条帖子，输出条数始终等于 count
func (s *GenerationService) GeneratePosts(ctx context.Context, req *dto.GeneratePostsRequest) (*dto.GeneratePostsResult, error) {
	topic := strings.TrimSpace(req.Topic)
	style := orDefault(strings.TrimSpace(req.Style), defaultPostStyle)
	platform := orDefault(req.Platform, defaultPostPlatform)
	count := req.Count
	if count <= 0 {
		count = defaultPostCount
	}

	posts := make([]dto.PostSuggestion, count)

	gen, ok := s.selector.Primary()
	if !ok {
		for i := range posts {
			posts[i] = s.mockPost(topic, style, platform, i)
		}
		return &dto.GeneratePostsResult{Posts: posts, Provider: string(provider.Mock)}, nil
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			posts[i] = s.generatePost(ctx, gen, topic, style, platform, i, count)
			return nil
		})
	}
	_ = g.Wait()

	// 全部降级时整体标记为 mock
	name := string(provider.Mock)
	for _, p := range posts {
		if p.Provider == string(gen.Name()) {
			name = p.Provider
			break
		}
	}
	return &dto.GeneratePostsResult{Posts: posts, Provider: name}, nil
}

func (s *GenerationService) generatePost(ctx context.Context, gen provider.TextGenerator, topic, style, platform string, i, count int) dto.PostSuggestion {
	p := postsPrompt(topic, style, platform, i, count)
	raw, err := gen.GenerateText(ctx, p.System, p.User, p.Opts)
	if err != nil {
		s.logger.Warn("帖子生成降级", "provider", gen.Name(), "topic", topic, "index", i, "error", err)
		return s.mockPost(topic, style, platform, i)
	}

	defaultTags := fmt.Sprintf("%s #MarketingDigital #%s", provider.Hashtag(topic), platform)
	post := dto.PostSuggestion{Engagement: s.engagement(), Provider: string(gen.Name())}

	var parsed struct {
		Title    string          `json:"title"`
		Content  string          `json:"content"`
		Hashtags json.RawMessage `json:"hashtags"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		post.Title = fmt.Sprintf("%s - Dica %d", topic, i+1)
		post.Content = raw
		post.Hashtags = defaultTags
		return post
	}

	post.Title = orDefault(strings.TrimSpace(parsed.Title), fmt.Sprintf("Post %d sobre %s", i+1, topic))
	post.Content = orDefault(strings.TrimSpace(parsed.Content), fmt.Sprintf("Conteúdo sobre %s criado especialmente para %s.", topic, platform))
	post.Hashtags = orDefault(flexibleTags(parsed.Hashtags), defaultTags)
	return post
}

func (s *GenerationService) mockPost(topic, style, platform string, i int) dto.PostSuggestion {
	m := provider.NewMockPost(topic, style, platform, i)
	return dto.PostSuggestion{
		Title:      m.Title,
		Content:    m.Content,
		Hashtags:   m.Hashtags,
		Engagement: s.engagement(),
		Provider:   string(provider.Mock),
	}
}

// engagement 占位互动数据: likes 50-249, comments 5-54, shares 2-21, rate 2-9
func (s *GenerationService) engagement() dto.Engagement {
	return dto.Engagement{
		Likes:    s.intn(200) + 50,
		Comments: s.intn(50) + 5,
		Shares:   s.intn(20) + 2,
		Rate:     s.intn(8) + 2,
	}
}

// ==================== 单条生成 ====================

// GenerateSingle 按类型查提示词表生成一条内容，失败时返回静态文案
func (s *GenerationService) GenerateSingle(ctx context.Context, req *dto.GenerateSingleRequest) (*dto.SingleContent, error) {
	customPrompt := strings.TrimSpace(req.Prompt())
	theme := strings.TrimSpace(req.Theme)
	if theme == "" && customPrompt == "" {
		return nil, fmt.Errorf("%w: theme or custom_prompt is required", ErrInvalidInput)
	}
	contentType := orDefault(req.Type, "default")
	platform := orDefault(req.Platform, defaultPostPlatform)

	gen, _ := s.selector.Resolve(provider.Name(req.Provider))
	p := singlePrompt(contentType, theme, platform, customPrompt)
	res := provider.AttemptText(ctx, gen, p.System, p.User, p.Opts, provider.Mock, func() string {
		return provider.MockSingle(contentType, theme, platform)
	})
	if res.Degraded() {
		s.logger.Warn("单条生成降级", "provider", gen.Name(), "type", contentType, "error", res.Err)
	}

	return &dto.SingleContent{
		Content:     res.Value,
		Theme:       theme,
		Type:        contentType,
		Platform:    platform,
		Provider:    string(res.Provider),
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

// ==================== 图片生成 ====================

// GenerateImage 没有图片凭证时返回图库占位图，供应商失败时返回 ErrImageGeneration
func (s *GenerationService) GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GeneratedImage, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		if strings.TrimSpace(req.Theme) == "" {
			return nil, fmt.Errorf("%w: prompt or theme is required", ErrInvalidInput)
		}
		prompt = imagePrompt(req.Theme, req.Style, req.Platform)
	}

	opts := provider.ImageOptions{
		Size:    provider.SizeForPlatform(req.Platform),
		Quality: provider.ClampQuality(req.Quality),
		Style:   provider.ClampStyle(req.Style),
	}
	result := &dto.GeneratedImage{
		Prompt:   prompt,
		Theme:    req.Theme,
		Platform: req.Platform,
		Style:    string(opts.Style),
		Quality:  string(opts.Quality),
		Size:     string(opts.Size),
	}

	if err := s.renderImage(ctx, prompt, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateImageWithReference 参考图只做可访问性探测，探测失败不影响生成
func (s *GenerationService) GenerateImageWithReference(ctx context.Context, req *dto.GenerateImageWithReferenceRequest) (*dto.GeneratedImage, error) {
	prompt := imageWithReferencePrompt(strings.TrimSpace(req.Prompt), req.Style, req.Platform)
	opts := provider.ImageOptions{
		Size:    provider.SizeForPlatform(req.Platform),
		Quality: provider.ImageQualityHD,
		Style:   provider.ImageStyleVivid,
	}
	result := &dto.GeneratedImage{
		Prompt:       prompt,
		Platform:     req.Platform,
		Style:        string(opts.Style),
		Quality:      string(opts.Quality),
		Size:         string(opts.Size),
		ReferenceURL: req.ReferenceURL(),
		Reference:    s.probeReference(ctx, req.ReferenceURL()),
	}

	if err := s.renderImage(ctx, prompt, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *GenerationService) renderImage(ctx context.Context, prompt string, opts provider.ImageOptions, result *dto.GeneratedImage) error {
	result.GeneratedAt = s.now().UTC().Format(time.RFC3339)

	gen, ok := s.selector.Images()
	if !ok {
		result.ImageURL = provider.StockImageURL
		result.Provider = string(provider.Mock)
		return nil
	}

	url, err := gen.GenerateImage(ctx, prompt, opts)
	if err != nil {
		s.logger.Error("图片生成失败", "provider", gen.Name(), "size", opts.Size, "error", err)
		return fmt.Errorf("%w: %w", ErrImageGeneration, err)
	}
	result.ImageURL = url
	result.Provider = string(gen.Name())
	return nil
}

func (s *GenerationService) probeReference(ctx context.Context, url string) *utils.ImageInfo {
	if url == "" {
		return nil
	}
	info, err := utils.ProbeImage(ctx, s.probe, url)
	if err != nil {
		s.logger.Warn("参考图不可用", "url", url, "error", err)
		return nil
	}
	return info
}

// ==================== 视频脚本 ====================

// GenerateVideoWithReference 首选供应商返回 JSON 脚本，无法解析时用原文拼装
func (s *GenerationService) GenerateVideoWithReference(ctx context.Context, req *dto.GenerateVideoWithReferenceRequest) (*dto.VideoScript, error) {
	topic := strings.TrimSpace(req.Topic)
	platform := orDefault(req.Platform, defaultPostPlatform)
	refURL := req.ReferenceURL()

	result := &dto.VideoScript{
		ReferenceURL: refURL,
		Reference:    s.probeReference(ctx, refURL),
		Style:        req.Style,
		Platform:     platform,
		Duration:     req.Duration,
		GeneratedAt:  s.now().UTC().Format(time.RFC3339),
	}

	fill := func(m provider.MockVideoScript, name provider.Name) {
		result.Title = m.Title
		result.Script = m.Script
		result.VisualNotes = m.VisualNotes
		result.Hashtags = m.Hashtags
		result.Provider = string(name)
	}

	gen, ok := s.selector.Primary()
	if !ok {
		fill(provider.NewMockVideoScript(topic, platform), provider.Mock)
		return result, nil
	}

	p := videoWithReferencePrompt(topic, orDefault(req.Style, defaultPostStyle), platform, orDefault(req.Duration, "30-60"), refURL != "")
	raw, err := gen.GenerateText(ctx, p.System, p.User, p.Opts)
	if err != nil {
		s.logger.Warn("视频脚本降级", "provider", gen.Name(), "topic", topic, "error", err)
		fill(provider.NewMockVideoScript(topic, platform), provider.Mock)
		return result, nil
	}

	var parsed struct {
		Title       string          `json:"title"`
		Script      string          `json:"script"`
		VisualNotes string          `json:"visual_notes"`
		Hashtags    json.RawMessage `json:"hashtags"`
	}
	templated := provider.MockVideoScript{
		Title:       fmt.Sprintf("Vídeo sobre %s", topic),
		Script:      raw,
		VisualNotes: "Usar elementos visuais modernos e dinâmicos",
		Hashtags:    fmt.Sprintf("%s #%s #Video", provider.Hashtag(topic), platform),
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		fill(templated, gen.Name())
		return result, nil
	}

	fill(provider.MockVideoScript{
		Title:       orDefault(strings.TrimSpace(parsed.Title), templated.Title),
		Script:      orDefault(strings.TrimSpace(parsed.Script), raw),
		VisualNotes: orDefault(strings.TrimSpace(parsed.VisualNotes), templated.VisualNotes),
		Hashtags:    orDefault(flexibleTags(parsed.Hashtags), templated.Hashtags),
	}, gen.Name())
	return result, nil
}

// ==================== 主题建议 ====================

// Suggestions 首选供应商给出热门主题，不可用或无法解析时返回静态目录
func (s *GenerationService) Suggestions(ctx context.Context) ([]provider.Suggestion, provider.Name) {
	gen, ok := s.selector.Primary()
	if !ok {
		return provider.SuggestionCatalogue(), provider.Mock
	}

	raw, err := gen.GenerateText(ctx, suggestionsPrompt.System, suggestionsPrompt.User, suggestionsPrompt.Opts)
	if err != nil {
		s.logger.Warn("主题建议降级", "provider", gen.Name(), "error", err)
		return provider.SuggestionCatalogue(), provider.Mock
	}

	var list []provider.Suggestion
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &list); err != nil || len(list) == 0 {
		s.logger.Warn("主题建议无法解析", "provider", gen.Name(), "error", err)
		return provider.SuggestionCatalogue(), provider.Mock
	}

	out := list[:0]
	for _, item := range list {
		if strings.TrimSpace(item.Theme) != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return provider.SuggestionCatalogue(), provider.Mock
	}
	return out, gen.Name()
}

// ==================== 工具函数 ====================

// stripCodeFence 去掉模型常见的 ```json 包裹
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// flexibleTags 话题标签可能是字符串或字符串数组
func flexibleTags(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strings.TrimSpace(str)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		tags := make([]string, 0, len(list))
		for _, t := range list {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if !strings.HasPrefix(t, "#") {
				t = "#" + t
			}
			tags = append(tags, t)
		}
		return strings.Join(tags, " ")
	}
	return ""
}

func displayName(n provider.Name) string {
	switch n {
	case provider.OpenAI:
		return "OpenAI"
	case provider.Gemini:
		return "Gemini"
	default:
		return string(n)
	}
}
