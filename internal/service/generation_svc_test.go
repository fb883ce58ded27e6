package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/provider"
	"github.com/Fabriciocypreste/novonovo/internal/provider/mocks"
)

// ==================== 测试辅助 ====================

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerationService(selector *provider.Selector) *GenerationService {
	svc := NewGenerationService(selector, nil, nil, 3)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func noCredentials() *GenerationService {
	return newTestGenerationService(provider.NewSelector(provider.Config{}))
}

func newTextMock(t *testing.T, name provider.Name) *mocks.MockTextGenerator {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockTextGenerator(ctrl)
	gen.EXPECT().Name().Return(name).AnyTimes()
	return gen
}

func assertEngagement(t *testing.T, e dto.Engagement) {
	t.Helper()
	assert.True(t, e.Likes >= 50 && e.Likes <= 249, "likes=%d", e.Likes)
	assert.True(t, e.Comments >= 5 && e.Comments <= 54, "comments=%d", e.Comments)
	assert.True(t, e.Shares >= 2 && e.Shares <= 21, "shares=%d", e.Shares)
	assert.True(t, e.Rate >= 2 && e.Rate <= 9, "rate=%d", e.Rate)
}

// ==================== 批量内容 ====================

func TestGenerateContent_NoCredentials(t *testing.T) {
	svc := noCredentials()

	res, err := svc.GenerateContent(context.Background(), &dto.GenerateContentRequest{Themes: []string{"Fitness"}})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Fitness", res.Items[0].Theme)
	assert.Equal(t, "mock", res.Items[0].Post.Provider)
	assert.Equal(t, "mock", res.Items[0].Video.Provider)
	assert.Equal(t, "mock", res.Items[0].Landing.Provider)
	assert.Equal(t, "mock", res.Provider)
	assert.Equal(t, "Generated content for 1 themes (mock data)", res.Message)
	assert.Contains(t, res.Items[0].Post.Content, "#Fitness")
}

func TestGenerateContent_PartialFailures(t *testing.T) {
	gen := newTextMock(t, provider.OpenAI)
	gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, system, user string, opts provider.TextOptions) (string, error) {
			switch {
			case strings.Contains(user, "roteiro"):
				return "", &provider.CallError{Provider: provider.OpenAI, Op: "chat completion", Err: errors.New("quota")}
			case strings.Contains(user, "landing page"):
				return "", provider.ErrEmptyContent
			default:
				return "post ao vivo", nil
			}
		}).Times(9)

	svc := newTestGenerationService(provider.NewSelectorFrom(gen, nil, nil))
	themes := []string{"Yoga", "Vinho", "Carro"}

	res, err := svc.GenerateContent(context.Background(), &dto.GenerateContentRequest{Themes: themes})
	require.NoError(t, err)
	assert.Equal(t, "openai", res.Provider)
	assert.Equal(t, "Generated content for 3 themes using OpenAI", res.Message)

	require.Len(t, res.Items, len(themes))
	for i, theme := range themes {
		item := res.Items[i]
		assert.Equal(t, theme, item.Theme, "输出顺序应与输入一致")

		assert.Equal(t, "openai", item.Post.Provider)
		assert.Equal(t, "instagram", item.Post.Platform)
		assert.Equal(t, "post ao vivo", item.Post.Content)

		assert.Equal(t, "fallback", item.Video.Provider)
		assert.Equal(t, "youtube", item.Video.Platform)
		assert.Equal(t, provider.MockContent("video", theme), item.Video.Content)

		assert.Equal(t, "fallback", item.Landing.Provider)
		assert.Equal(t, "landing_page", item.Landing.Type)
		assert.Equal(t, "web", item.Landing.Platform)
	}
}

func TestGenerateContent_UsesThemeOptions(t *testing.T) {
	gen := newTextMock(t, provider.Gemini)
	gomock.InOrder(
		gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), provider.TextOptions{Temperature: 0.8, MaxTokens: 500}).Return("post", nil),
		gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), provider.TextOptions{Temperature: 0.8, MaxTokens: 600}).Return("video", nil),
		gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), provider.TextOptions{Temperature: 0.7, MaxTokens: 800}).Return("landing", nil),
	)

	svc := newTestGenerationService(provider.NewSelectorFrom(nil, gen, nil))
	res, err := svc.GenerateContent(context.Background(), &dto.GenerateContentRequest{Themes: []string{"SEO"}})
	require.NoError(t, err)
	assert.Equal(t, "Generated content for 1 themes using Gemini", res.Message)
	assert.Equal(t, "gemini", res.Items[0].Landing.Provider)
	assert.Equal(t, "landing", res.Items[0].Landing.Content)
}

// ==================== 批量帖子 ====================

func TestGeneratePosts_NoCredentials(t *testing.T) {
	svc := noCredentials()

	res, err := svc.GeneratePosts(context.Background(), &dto.GeneratePostsRequest{Topic: "SEO", Count: 5})
	require.NoError(t, err)
	assert.Equal(t, "mock", res.Provider)

	require.Len(t, res.Posts, 5)
	for i, p := range res.Posts {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Content)
		assert.Contains(t, p.Hashtags, "#SEO")
		assert.Contains(t, p.Hashtags, "#Profissional")
		assert.Contains(t, p.Hashtags, "#instagram")
		assert.Equal(t, fmt.Sprintf("SEO - Estratégia %d", i+1), p.Title)
		assertEngagement(t, p.Engagement)
	}
}

func TestGeneratePosts_DefaultCount(t *testing.T) {
	res, err := noCredentials().GeneratePosts(context.Background(), &dto.GeneratePostsRequest{Topic: "Café"})
	require.NoError(t, err)
	assert.Len(t, res.Posts, 10)
}

func TestGeneratePosts_VendorOutputs(t *testing.T) {
	gen := newTextMock(t, provider.OpenAI)
	gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), provider.TextOptions{Temperature: 0.9, MaxTokens: 400}).
		DoAndReturn(func(ctx context.Context, system, user string, opts provider.TextOptions) (string, error) {
			switch {
			case strings.Contains(user, "Variação: 1 de 4"):
				return `{"title":"Título A","content":"Conteúdo A","hashtags":"#SEO #Google"}`, nil
			case strings.Contains(user, "Variação: 2 de 4"):
				return "```json\n{\"title\":\"Título B\",\"content\":\"Conteúdo B\",\"hashtags\":[\"SEO\",\"#Blog\"]}\n```", nil
			case strings.Contains(user, "Variação: 3 de 4"):
				return "texto livre sem json", nil
			default:
				return "", errors.New("timeout")
			}
		}).Times(4)

	svc := newTestGenerationService(provider.NewSelectorFrom(gen, nil, nil))
	res, err := svc.GeneratePosts(context.Background(), &dto.GeneratePostsRequest{Topic: "SEO", Platform: "linkedin", Count: 4})
	require.NoError(t, err)
	require.Len(t, res.Posts, 4)
	assert.Equal(t, "openai", res.Provider)

	assert.Equal(t, "Título A", res.Posts[0].Title)
	assert.Equal(t, "#SEO #Google", res.Posts[0].Hashtags)
	assert.Equal(t, "openai", res.Posts[0].Provider)

	assert.Equal(t, "Título B", res.Posts[1].Title)
	assert.Equal(t, "#SEO #Blog", res.Posts[1].Hashtags)

	assert.Equal(t, "SEO - Dica 3", res.Posts[2].Title)
	assert.Equal(t, "texto livre sem json", res.Posts[2].Content)
	assert.Equal(t, "#SEO #MarketingDigital #linkedin", res.Posts[2].Hashtags)

	assert.Equal(t, "mock", res.Posts[3].Provider)
	assert.Equal(t, "SEO - Estratégia 4", res.Posts[3].Title)

	for _, p := range res.Posts {
		assertEngagement(t, p.Engagement)
	}
}

// ==================== 单条生成 ====================

func TestGenerateSingle(t *testing.T) {
	t.Run("无凭证时返回静态文案", func(t *testing.T) {
		res, err := noCredentials().GenerateSingle(context.Background(), &dto.GenerateSingleRequest{
			Theme: "SEO", Type: "video", Platform: "youtube",
		})
		require.NoError(t, err)
		assert.Equal(t, "mock", res.Provider)
		assert.Equal(t, provider.MockSingle("video", "SEO", "youtube"), res.Content)
		assert.Equal(t, "2025-03-01T12:00:00Z", res.GeneratedAt)
	})

	t.Run("landing_page 使用更大的 token 上限", func(t *testing.T) {
		gen := newTextMock(t, provider.OpenAI)
		gen.EXPECT().GenerateText(gomock.Any(), gomock.Not(""), gomock.Any(), provider.TextOptions{Temperature: 0.8, MaxTokens: 1000}).
			Return("copy", nil)

		svc := newTestGenerationService(provider.NewSelectorFrom(gen, nil, nil))
		res, err := svc.GenerateSingle(context.Background(), &dto.GenerateSingleRequest{Theme: "SEO", Type: "landing_page"})
		require.NoError(t, err)
		assert.Equal(t, "openai", res.Provider)
		assert.Equal(t, "copy", res.Content)
		assert.Equal(t, "instagram", res.Platform)
	})

	t.Run("自定义提示词时系统提示词为空", func(t *testing.T) {
		gen := newTextMock(t, provider.Gemini)
		gen.EXPECT().GenerateText(gomock.Any(), "", "escreva um haicai", provider.TextOptions{Temperature: 0.8, MaxTokens: 600}).
			Return("haicai", nil)

		svc := newTestGenerationService(provider.NewSelectorFrom(nil, gen, nil))
		res, err := svc.GenerateSingle(context.Background(), &dto.GenerateSingleRequest{
			Type: "post", CustomPromptCamel: "escreva um haicai", Provider: "gemini",
		})
		require.NoError(t, err)
		assert.Equal(t, "gemini", res.Provider)
	})

	t.Run("指定的供应商没有凭证", func(t *testing.T) {
		gen := newTextMock(t, provider.OpenAI)

		svc := newTestGenerationService(provider.NewSelectorFrom(gen, nil, nil))
		res, err := svc.GenerateSingle(context.Background(), &dto.GenerateSingleRequest{
			Theme: "SEO", Type: "post", Provider: "gemini",
		})
		require.NoError(t, err)
		assert.Equal(t, "mock", res.Provider)
	})

	t.Run("调用失败降级为 mock", func(t *testing.T) {
		gen := newTextMock(t, provider.OpenAI)
		gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", provider.ErrEmptyContent)

		svc := newTestGenerationService(provider.NewSelectorFrom(gen, nil, nil))
		res, err := svc.GenerateSingle(context.Background(), &dto.GenerateSingleRequest{Theme: "SEO", Type: "carousel"})
		require.NoError(t, err)
		assert.Equal(t, "mock", res.Provider)
		assert.Equal(t, provider.MockSingle("carousel", "SEO", "instagram"), res.Content)
	})

	t.Run("缺少主题和提示词", func(t *testing.T) {
		_, err := noCredentials().GenerateSingle(context.Background(), &dto.GenerateSingleRequest{Type: "post"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// ==================== 图片 ====================

func TestGenerateImage_NoCredentials(t *testing.T) {
	res, err := noCredentials().GenerateImage(context.Background(), &dto.GenerateImageRequest{Theme: "Fitness", Platform: "youtube"})
	require.NoError(t, err)
	assert.Equal(t, "mock", res.Provider)
	assert.Equal(t, provider.StockImageURL, res.ImageURL)
	assert.Equal(t, "1792x1024", res.Size)
}

func TestGenerateImage_SizeAndClamping(t *testing.T) {
	tests := []struct {
		platform string
		quality  string
		style    string
		want     provider.ImageOptions
	}{
		{"youtube", "hd", "natural", provider.ImageOptions{Size: provider.ImageSizeWide, Quality: provider.ImageQualityHD, Style: provider.ImageStyleNatural}},
		{"instagram", "ultra", "", provider.ImageOptions{Size: provider.ImageSizeSquare, Quality: provider.ImageQualityStandard, Style: provider.ImageStyleVivid}},
		{"linkedin", "", "modern", provider.ImageOptions{Size: provider.ImageSizeSquare, Quality: provider.ImageQualityStandard, Style: provider.ImageStyleVivid}},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			img := mocks.NewMockImageGenerator(ctrl)
			img.EXPECT().Name().Return(provider.OpenAI).AnyTimes()
			img.EXPECT().GenerateImage(gomock.Any(), gomock.Any(), tt.want).Return("https://cdn/img.png", nil)

			svc := newTestGenerationService(provider.NewSelectorFrom(nil, nil, img))
			res, err := svc.GenerateImage(context.Background(), &dto.GenerateImageRequest{
				Theme: "Café", Platform: tt.platform, Quality: tt.quality, Style: tt.style,
			})
			require.NoError(t, err)
			assert.Equal(t, "https://cdn/img.png", res.ImageURL)
			assert.Equal(t, string(tt.want.Size), res.Size)
			assert.Contains(t, res.Prompt, "Create a professional marketing image for Café")
		})
	}
}

func TestGenerateImage_VendorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	img := mocks.NewMockImageGenerator(ctrl)
	img.EXPECT().Name().Return(provider.OpenAI).AnyTimes()
	img.EXPECT().GenerateImage(gomock.Any(), "um gato", gomock.Any()).Return("", provider.ErrEmptyContent)

	svc := newTestGenerationService(provider.NewSelectorFrom(nil, nil, img))
	_, err := svc.GenerateImage(context.Background(), &dto.GenerateImageRequest{Prompt: "um gato"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImageGeneration)
	assert.ErrorIs(t, err, provider.ErrEmptyContent)
}

func TestGenerateImage_RequiresPromptOrTheme(t *testing.T) {
	_, err := noCredentials().GenerateImage(context.Background(), &dto.GenerateImageRequest{Platform: "youtube"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateImageWithReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	img := mocks.NewMockImageGenerator(ctrl)
	img.EXPECT().Name().Return(provider.OpenAI).AnyTimes()
	img.EXPECT().GenerateImage(gomock.Any(), gomock.Any(), provider.ImageOptions{
		Size: provider.ImageSizeWide, Quality: provider.ImageQualityHD, Style: provider.ImageStyleVivid,
	}).Return("https://cdn/ref.png", nil)

	svc := newTestGenerationService(provider.NewSelectorFrom(nil, nil, img))
	res, err := svc.GenerateImageWithReference(context.Background(), &dto.GenerateImageWithReferenceRequest{
		Prompt: "Tênis de corrida", Platform: "youtube",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/ref.png", res.ImageURL)
	assert.Equal(t, "Tênis de corrida. Style inspiration: professional marketing. Create for youtube. Reference style: modern, professional, high-quality visual design.", res.Prompt)
	assert.Nil(t, res.Reference)
}

func TestGenerateImageWithReference_SkipsInternalReference(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
	}))
	defer srv.Close()

	res, err := noCredentials().GenerateImageWithReference(context.Background(), &dto.GenerateImageWithReferenceRequest{
		Prompt: "Tênis de corrida", ReferenceImageURL: srv.URL + "/internal-admin",
	})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/internal-admin", res.ReferenceURL)
	assert.Nil(t, res.Reference)
	assert.Zero(t, hits.Load())
}

// ==================== 视频脚本 ====================

func TestGenerateVideoWithReference(t *testing.T) {
	t.Run("无凭证", func(t *testing.T) {
		res, err := noCredentials().GenerateVideoWithReference(context.Background(), &dto.GenerateVideoWithReferenceRequest{
			Topic: "Marketing Digital", Platform: "tiktok",
		})
		require.NoError(t, err)
		assert.Equal(t, "mock", res.Provider)
		assert.Equal(t, "Vídeo: Marketing Digital para tiktok", res.Title)
		assert.Equal(t, "#MarketingDigital #tiktok #VideoMarketing #Dicas", res.Hashtags)
	})

	t.Run("JSON 输出", func(t *testing.T) {
		gen := newTextMock(t, provider.OpenAI)
		gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), provider.TextOptions{Temperature: 0.8, MaxTokens: 800}).
			Return("```json\n{\"title\":\"T\",\"script\":\"S\",\"visual_notes\":\"V\",\"hashtags\":[\"a\",\"b\"]}\n```", nil)

		svc := newTestGenerationService(provider.NewSelectorFrom(gen, nil, nil))
		res, err := svc.GenerateVideoWithReference(context.Background(), &dto.GenerateVideoWithReferenceRequest{Topic: "SEO"})
		require.NoError(t, err)
		assert.Equal(t, "openai", res.Provider)
		assert.Equal(t, "T", res.Title)
		assert.Equal(t, "S", res.Script)
		assert.Equal(t, "V", res.VisualNotes)
		assert.Equal(t, "#a #b", res.Hashtags)
	})

	t.Run("非 JSON 输出按模板拼装", func(t *testing.T) {
		gen := newTextMock(t, provider.OpenAI)
		gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("roteiro livre", nil)

		svc := newTestGenerationService(provider.NewSelectorFrom(gen, nil, nil))
		res, err := svc.GenerateVideoWithReference(context.Background(), &dto.GenerateVideoWithReferenceRequest{Topic: "SEO", Platform: "youtube"})
		require.NoError(t, err)
		assert.Equal(t, "openai", res.Provider)
		assert.Equal(t, "Vídeo sobre SEO", res.Title)
		assert.Equal(t, "roteiro livre", res.Script)
		assert.Equal(t, "#SEO #youtube #Video", res.Hashtags)
	})

	t.Run("调用失败", func(t *testing.T) {
		gen := newTextMock(t, provider.OpenAI)
		gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

		svc := newTestGenerationService(provider.NewSelectorFrom(gen, nil, nil))
		res, err := svc.GenerateVideoWithReference(context.Background(), &dto.GenerateVideoWithReferenceRequest{Topic: "SEO"})
		require.NoError(t, err)
		assert.Equal(t, "mock", res.Provider)
	})
}

// ==================== 主题建议 ====================

func TestSuggestions(t *testing.T) {
	list, name := noCredentials().Suggestions(context.Background())
	assert.Equal(t, provider.Mock, name)
	assert.Len(t, list, 10)

	gen := newTextMock(t, provider.Gemini)
	gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`[{"theme":"IA no varejo","description":"d","potential":"alto"},{"theme":"","description":"x"}]`, nil)

	svc := newTestGenerationService(provider.NewSelectorFrom(nil, gen, nil))
	list, name = svc.Suggestions(context.Background())
	assert.Equal(t, provider.Gemini, name)
	require.Len(t, list, 1)
	assert.Equal(t, "IA no varejo", list[0].Theme)
}

func TestFlexibleTagsAndCodeFence(t *testing.T) {
	assert.Equal(t, "#a #b", flexibleTags([]byte(`"#a #b"`)))
	assert.Equal(t, "#a #b", flexibleTags([]byte(`["a","#b",""]`)))
	assert.Equal(t, "", flexibleTags([]byte(`42`)))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "texto", stripCodeFence("  texto "))
}
