package service

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/Fabriciocypreste/novonovo/internal/model"
	"github.com/Fabriciocypreste/novonovo/internal/repository"
)

// TemplateService 模板目录
type TemplateService struct {
	repo repository.TemplateRepository
}

func NewTemplateService(repo repository.TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

func (s *TemplateService) List(ctx context.Context) ([]model.Template, error) {
	templates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// Seed 模板表为空时写入内置模板，返回写入条数
func (s *TemplateService) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	seeds := builtinTemplates()
	for i := range seeds {
		if err := s.repo.Create(ctx, &seeds[i]); err != nil {
			return i, fmt.Errorf("seed template %q: %w", seeds[i].Name, err)
		}
	}
	return len(seeds), nil
}

func builtinTemplates() []model.Template {
	str := func(s string) *string { return &s }
	return []model.Template{
		{
			Name:         "Post Quadrado Promocional",
			Category:     str("instagram"),
			TemplateType: str("post"),
			Dimensions:   str("1080x1080"),
			TemplateData: datatypes.JSON(`{"layout":"centered","elements":["headline","image","cta"]}`),
		},
		{
			Name:         "Story Lançamento",
			Category:     str("instagram"),
			TemplateType: str("story"),
			Dimensions:   str("1080x1920"),
			TemplateData: datatypes.JSON(`{"layout":"vertical","elements":["background","headline","swipe_up"]}`),
			IsPremium:    true,
		},
		{
			Name:         "Thumbnail YouTube",
			Category:     str("youtube"),
			TemplateType: str("thumbnail"),
			Dimensions:   str("1280x720"),
			TemplateData: datatypes.JSON(`{"layout":"split","elements":["face","headline"]}`),
		},
		{
			Name:         "Banner LinkedIn",
			Category:     str("linkedin"),
			TemplateType: str("banner"),
			Dimensions:   str("1584x396"),
			TemplateData: datatypes.JSON(`{"layout":"wide","elements":["logo","tagline"]}`),
			IsPremium:    true,
		},
		{
			Name:         "Hero Landing Page",
			Category:     str("web"),
			TemplateType: str("landing_page"),
			Dimensions:   str("1440x900"),
			TemplateData: datatypes.JSON(`{"sections":["headline","subheadline","benefits","cta","social_proof"]}`),
		},
	}
}
