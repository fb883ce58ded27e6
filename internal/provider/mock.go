package provider

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ==================== 静态文案 ====================
// 无凭证或在线调用失败时使用，所有降级文案只在这里维护

// Hashtag 去掉空白后拼成话题标签
func Hashtag(s string) string {
	return "#" + strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

var titleCaser = cases.Title(language.BrazilianPortuguese)

// TitleHashtag 首字母大写后的话题标签，如 profissional -> #Profissional
func TitleHashtag(s string) string {
	return Hashtag(titleCaser.String(s))
}

// MockContent 内容生成接口每个主题的三段静态文案
func MockContent(contentType, theme string) string {
	switch contentType {
	case "post":
		return fmt.Sprintf("🚀 %s em Destaque!\n\nDicas exclusivas para transformar seus resultados:\n\n✅ Estratégias validadas\n✅ Implementação rápida\n✅ ROI comprovado\n\nSalva este post! 📌\n\n%s #MarketingDigital #Resultados",
			theme, Hashtag(theme))
	case "video":
		return fmt.Sprintf("🎬 ROTEIRO - %s\n\nGANCHO (0-3s): \"Isso vai mudar sua visão sobre %s!\"\n\nDESENVOLVIMENTO (4-45s):\n• Dica 1: Análise de dados\n• Dica 2: Otimização contínua\n• Dica 3: Automação inteligente\n\nCTA (46-60s): \"Qual dessas você vai testar primeiro?\"",
			theme, theme)
	default:
		return fmt.Sprintf("🏆 LANDING PAGE - %s\n\nHEADLINE: \"Domine %s em 21 Dias\"\n\nSUBHEADLINE: \"Sistema usado por +1000 empresas de sucesso\"\n\nBENEFÍCIOS:\n• ROI de 300%% em média\n• Suporte especializado\n• Garantia de resultado\n\nCTA: \"QUERO COMEÇAR AGORA\"\n\nSOCIAL PROOF: \"+5000 clientes satisfeitos\"",
			theme, theme)
	}
}

// MockSingle 单条生成接口按类型返回的静态文案
func MockSingle(contentType, theme, platform string) string {
	switch contentType {
	case "post":
		return fmt.Sprintf("🚀 %s em foco!\n\nTransforme sua estratégia digital hoje mesmo:\n\n✅ Resultados em 30 dias\n✅ Técnicas comprovadas\n✅ Aumento de engajamento\n\nCurtiu? Salva o post! 📌\n\n%s #MarketingDigital #Estrategia #%s",
			theme, Hashtag(theme), platform)
	case "video":
		return fmt.Sprintf("Roteiro - %s para %s\n\n🎬 GANCHO (0-3s):\n\"A verdade sobre %s que ninguém te conta!\"\n\n📚 DESENVOLVIMENTO (4-45s):\n• Dica 1: Análise de métricas\n• Dica 2: Otimização contínua\n• Dica 3: Segmentação avançada\n\n🎯 CTA (46-60s):\n\"Comenta aqui sua maior dificuldade!\"",
			theme, platform, theme)
	case "landing_page":
		return fmt.Sprintf("🏆 LANDING PAGE - %s\n\n📝 HEADLINE:\n\"Revolucione seu %s em 7 Dias\"\n\n📄 SUBHEADLINE:\n\"Método exclusivo usado por +500 empresas\"\n\n🎯 BENEFÍCIOS:\n• ROI de 400%% comprovado\n• Implementação rápida\n• Suporte VIP incluso\n\n🔥 CTA:\n\"QUERO TRANSFORMAR MEU NEGÓCIO\"",
			theme, theme)
	case "image":
		format := "retangular 16:9"
		if platform == "instagram" {
			format = "quadrado 1:1"
		}
		return fmt.Sprintf("Prompt de imagem para %s: Criar uma imagem moderna e profissional sobre %s, com cores vibrantes da marca, elementos gráficos clean, tipografia bold, composição equilibrada, estilo %s, alta qualidade visual, iluminação natural.",
			theme, theme, format)
	default:
		return fmt.Sprintf("Conteúdo sobre %s para %s:\n\nEste é um exemplo de conteúdo gerado automaticamente. Personalize conforme sua necessidade e estratégia de marca.",
			theme, platform)
	}
}

// MockPost 批量帖子的第 i 条静态文案（i 从 0 开始）
type MockPost struct {
	Title    string
	Content  string
	Hashtags string
}

func NewMockPost(topic, style, platform string, i int) MockPost {
	closing := "🔥 Compartilha com quem precisa!"
	if i%2 == 0 {
		closing = "📊 Save este post!"
	}
	return MockPost{
		Title: fmt.Sprintf("%s - Estratégia %d", topic, i+1),
		Content: fmt.Sprintf("🚀 %s em Destaque!\n\nDica %d para transformar seus resultados:\n\n✅ Implementação prática\n✅ Resultados comprovados\n✅ Estratégia %s\n\nQual sua maior dificuldade com %s? Comenta aqui! 👇\n\n%s",
			topic, i+1, style, topic, closing),
		Hashtags: fmt.Sprintf("%s #MarketingDigital #%s #Estrategia #Dicas %s",
			Hashtag(topic), platform, TitleHashtag(style)),
	}
}

// MockVideoScript 带参考图的视频脚本静态文案
type MockVideoScript struct {
	Title       string
	Script      string
	VisualNotes string
	Hashtags    string
}

func NewMockVideoScript(topic, platform string) MockVideoScript {
	return MockVideoScript{
		Title: fmt.Sprintf("Vídeo: %s para %s", topic, platform),
		Script: fmt.Sprintf("🎬 ROTEIRO - %s\n\nGANCHO (0-3s):\n\"Isso vai transformar sua visão sobre %s!\"\n\nDESENVOLVIMENTO (4-45s):\n• Ponto 1: Estratégia principal\n• Ponto 2: Implementação prática\n• Ponto 3: Resultados esperados\n\nCTA (46-60s):\n\"Salva esse vídeo e comenta sua dúvida!\"",
			topic, topic),
		VisualNotes: "Use transições dinâmicas, texto em destaque, cores vibrantes da marca. Inspiração na imagem de referência para estilo visual.",
		Hashtags:    fmt.Sprintf("%s #%s #VideoMarketing #Dicas", Hashtag(topic), platform),
	}
}

// Suggestion 热门主题建议
type Suggestion struct {
	Theme       string `json:"theme"`
	Description string `json:"description"`
	Potential   string `json:"potential"`
}

// SuggestionCatalogue 供应商不可用或输出无法解析时返回的主题目录
func SuggestionCatalogue() []Suggestion {
	return []Suggestion{
		{Theme: "Marketing Digital", Description: "Estratégias de aquisição e conversão para pequenas empresas", Potential: "alto"},
		{Theme: "E-commerce", Description: "Vendas online, marketplaces e experiência de compra", Potential: "alto"},
		{Theme: "Saúde e Bem-estar", Description: "Rotina saudável, saúde mental e qualidade de vida", Potential: "alto"},
		{Theme: "Tecnologia", Description: "Inteligência artificial aplicada ao dia a dia dos negócios", Potential: "alto"},
		{Theme: "Educação", Description: "Cursos online, microlearning e educação continuada", Potential: "médio"},
		{Theme: "Imobiliário", Description: "Financiamento, investimento e tendências de moradia", Potential: "médio"},
		{Theme: "Alimentação", Description: "Receitas práticas, delivery e alimentação consciente", Potential: "médio"},
		{Theme: "Moda e Beleza", Description: "Moda sustentável, autocuidado e tendências da estação", Potential: "médio"},
		{Theme: "Finanças Pessoais", Description: "Organização financeira, Pix e investimentos para iniciantes", Potential: "alto"},
		{Theme: "Sustentabilidade", Description: "Consumo consciente e práticas ESG nas empresas", Potential: "baixo"},
	}
}
