package service

import (
	"context"
	"fmt"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/repository"
)

// AnalyticsService 内容统计
type AnalyticsService struct {
	repo repository.AnalyticsRepository
}

func NewAnalyticsService(repo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) Summary(ctx context.Context) (*dto.AnalyticsResponse, error) {
	totals, err := s.repo.GetTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics totals: %w", err)
	}
	byType, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics by type: %w", err)
	}
	byPlatform, err := s.repo.CountByPlatform(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics by platform: %w", err)
	}
	return &dto.AnalyticsResponse{
		Totals:            *totals,
		ContentByType:     byType,
		ContentByPlatform: byPlatform,
	}, nil
}
