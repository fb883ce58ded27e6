package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/model"
	"github.com/Fabriciocypreste/novonovo/internal/repository"
)

// BrandKitService 品牌配置
type BrandKitService struct {
	repo repository.BrandKitRepository
}

func NewBrandKitService(repo repository.BrandKitRepository) *BrandKitService {
	return &BrandKitService{repo: repo}
}

// GetActive 没有生效配置时返回 nil
func (s *BrandKitService) GetActive(ctx context.Context) (*model.BrandKit, error) {
	kit, err := s.repo.GetActive(ctx, model.DefaultUserID)
	if err != nil {
		return nil, fmt.Errorf("get active brand kit: %w", err)
	}
	return kit, nil
}

// Save 停用旧配置后写入新配置，未填写字段使用默认值
func (s *BrandKitService) Save(ctx context.Context, req *dto.SaveBrandKitRequest) (*model.BrandKit, error) {
	kit := &model.BrandKit{
		UserID:           model.DefaultUserID,
		Name:             orDefault(strings.TrimSpace(req.Name), model.BrandKitDefaultName),
		LogoURL:          req.LogoURL,
		PrimaryColor:     orDefault(req.PrimaryColor, model.BrandKitDefaultPrimaryColor),
		SecondaryColor:   orDefault(req.SecondaryColor, model.BrandKitDefaultSecondaryColor),
		AccentColor:      orDefault(req.AccentColor, model.BrandKitDefaultAccentColor),
		FontPrimary:      orDefault(req.FontPrimary, model.BrandKitDefaultFontPrimary),
		FontSecondary:    orDefault(req.FontSecondary, model.BrandKitDefaultFontSecondary),
		BrandVoice:       orDefault(req.BrandVoice, model.BrandKitDefaultVoice),
		Tagline:          req.Tagline,
		BrandDescription: req.BrandDescription,
	}
	if err := s.repo.Replace(ctx, kit); err != nil {
		return nil, fmt.Errorf("save brand kit: %w", err)
	}
	return kit, nil
}
