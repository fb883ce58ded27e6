package service

import (
	"fmt"

	"github.com/Fabriciocypreste/novonovo/internal/provider"
)

// ==================== 提示词 ====================

// promptPair 系统提示词与用户提示词
type promptPair struct {
	System string
	User   string
	Opts   provider.TextOptions
}

// ==================== 批量内容 ====================

func contentPostPrompt(theme string) promptPair {
	return promptPair{
		System: "Você é um especialista em marketing digital brasileiro. Crie conteúdo envolvente e estratégico para redes sociais.",
		User: fmt.Sprintf(`Crie um post para Instagram sobre o tema: %s

Requisitos:
- Linguagem brasileira natural e engajante
- Tom conversacional e profissional
- Máximo 2200 caracteres
- Inclua hashtags relevantes
- Call-to-action forte
- Use emojis estrategicamente

Responda apenas com o conteúdo do post.`, theme),
		Opts: provider.TextOptions{Temperature: 0.8, MaxTokens: 500},
	}
}

func contentVideoPrompt(theme string) promptPair {
	return promptPair{
		System: "Você é um roteirista especializado em vídeos para redes sociais brasileiras.",
		User: fmt.Sprintf(`Crie um roteiro de vídeo de 30-60 segundos sobre: %s

Estrutura obrigatória:
- GANCHO (0-3s): Frase impactante para prender atenção
- DESENVOLVIMENTO (4-45s): 3 dicas práticas e valiosas
- CTA (46-60s): Call-to-action claro

Linguagem brasileira, dinâmica e engajante. Indique timing.`, theme),
		Opts: provider.TextOptions{Temperature: 0.8, MaxTokens: 600},
	}
}

func contentLandingPrompt(theme string) promptPair {
	return promptPair{
		System: "Você é um copywriter especialista em conversão e vendas digitais no Brasil.",
		User: fmt.Sprintf(`Crie copy para uma landing page sobre: %s

Estrutura necessária:
- HEADLINE: Frase principal impactante (máximo 10 palavras)
- SUBHEADLINE: Complemento que explica o benefício
- BENEFÍCIOS: 3-5 bullet points com resultados específicos
- CTA: Botão de ação irresistível
- SOCIAL PROOF: Elemento de credibilidade

Foque em conversão máxima. Linguagem brasileira persuasiva.`, theme),
		Opts: provider.TextOptions{Temperature: 0.7, MaxTokens: 800},
	}
}

// ==================== 批量帖子 ====================

func postsPrompt(topic, style, platform string, i, count int) promptPair {
	return promptPair{
		System: fmt.Sprintf("Você é um especialista em marketing digital brasileiro. Crie posts únicos e variados para %s com estilo %s.", platform, style),
		User: fmt.Sprintf(`Crie um post único sobre "%s" para %s.

Estilo: %s
Variação: %d de %d (seja criativo e diferente dos anteriores)

Estrutura da resposta (JSON):
{
  "title": "Título chamativo (máx 60 chars)",
  "content": "Conteúdo do post (respeitando limite da plataforma)",
  "hashtags": "#hashtag1 #hashtag2 #hashtag3 #hashtag4 #hashtag5"
}

Requisitos:
- Linguagem brasileira natural
- Tom %s
- Call-to-action relevante
- Hashtags estratégicas
- Conteúdo único e envolvente`, topic, platform, style, i+1, count, style),
		Opts: provider.TextOptions{Temperature: 0.9, MaxTokens: 400},
	}
}

// ==================== 单条生成 ====================

type singlePromptFunc func(theme, platform string) (system, user string)

// singlePrompts 按内容类型查表，未知类型使用 default
var singlePrompts = map[string]singlePromptFunc{
	"post": func(theme, platform string) (string, string) {
		return "Você é um especialista em marketing digital brasileiro. Crie posts envolventes para redes sociais.",
			fmt.Sprintf("Crie um post para %s sobre %s. Use linguagem brasileira natural, seja conversacional, inclua hashtags relevantes e call-to-action. Máximo 2200 caracteres.", platform, theme)
	},
	"video": func(theme, platform string) (string, string) {
		return "Você é um roteirista especializado em vídeos para redes sociais brasileiras.",
			fmt.Sprintf("Crie um roteiro de vídeo de 30-60 segundos para %s sobre %s. Estrutura: GANCHO (0-3s), DESENVOLVIMENTO (4-45s), CTA (46-60s). Linguagem brasileira dinâmica.", platform, theme)
	},
	"landing_page": func(theme, platform string) (string, string) {
		return "Você é um copywriter especialista em conversão e vendas digitais no Brasil.",
			fmt.Sprintf("Crie copy para landing page sobre %s. Inclua: HEADLINE impactante, SUBHEADLINE explicativa, BENEFÍCIOS em bullet points, CTA irresistível, SOCIAL PROOF. Foque em conversão.", theme)
	},
	"image": func(theme, platform string) (string, string) {
		return "Você é um especialista em prompts para geração de imagens marketing.",
			fmt.Sprintf("Crie um prompt detalhado para gerar uma imagem relacionada a %s para %s. Descreva estilo visual, cores, elementos, composição e mood da imagem.", theme, platform)
	},
	"default": func(theme, platform string) (string, string) {
		return "Você é um especialista em marketing digital brasileiro.",
			fmt.Sprintf("Crie conteúdo sobre %s para %s. Use linguagem brasileira e seja engajante.", theme, platform)
	},
}

// singlePrompt 自定义提示词时系统提示词为空
func singlePrompt(contentType, theme, platform, customPrompt string) promptPair {
	opts := provider.TextOptions{Temperature: 0.8, MaxTokens: 600}
	if contentType == "landing_page" {
		opts.MaxTokens = 1000
	}
	if customPrompt != "" {
		return promptPair{User: customPrompt, Opts: opts}
	}

	build, ok := singlePrompts[contentType]
	if !ok {
		build = singlePrompts["default"]
	}
	system, user := build(theme, platform)
	return promptPair{System: system, User: user, Opts: opts}
}

// ==================== 参考图 ====================

func videoWithReferencePrompt(topic, style, platform, duration string, hasReference bool) promptPair {
	reference := "Sem referência"
	if hasReference {
		reference = "Imagem de referência fornecida"
	}
	return promptPair{
		System: "Você é um roteirista especializado em vídeos para redes sociais brasileiras com referências visuais.",
		User: fmt.Sprintf(`Crie um roteiro de vídeo de %s segundos sobre "%s" para %s.

Estilo: %s
Referência visual: %s

Estrutura obrigatória:
- GANCHO (0-3s): Frase impactante
- DESENVOLVIMENTO (4-45s): Conteúdo principal com 3 pontos
- CTA (46-60s): Call-to-action específico
- VISUAL NOTES: Sugestões de elementos visuais baseados na referência

Responda em JSON:
{
  "title": "Título do vídeo",
  "script": "Roteiro completo com timing",
  "visual_notes": "Sugestões visuais e de edição",
  "hashtags": "hashtags relevantes"
}`, duration, topic, platform, style, reference),
		Opts: provider.TextOptions{Temperature: 0.8, MaxTokens: 800},
	}
}

func imagePrompt(theme, style, platform string) string {
	return fmt.Sprintf("Create a professional marketing image for %s. Style: %s, high quality, suitable for %s, vibrant colors, professional branding, engaging visual design.",
		theme, orDefault(style, "modern and clean"), orDefault(platform, "social media"))
}

func imageWithReferencePrompt(prompt, style, platform string) string {
	return fmt.Sprintf("%s. Style inspiration: %s. Create for %s. Reference style: modern, professional, high-quality visual design.",
		prompt, orDefault(style, "professional marketing"), orDefault(platform, "social media"))
}

// ==================== 主题建议 ====================

var suggestionsPrompt = promptPair{
	User: `Gere 10 sugestões de temas trending para marketing digital no Brasil.

Requisitos:
- Temas atuais e relevantes
- Foco no mercado brasileiro
- Incluir tendências de tecnologia, negócios e sociedade
- Formato JSON: [{"theme": "nome", "description": "descrição", "potential": "alto/médio/baixo"}]

Responda apenas com o JSON.`,
	Opts: provider.TextOptions{Temperature: 0.8, MaxTokens: 800},
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
