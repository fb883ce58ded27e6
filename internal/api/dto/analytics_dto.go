package dto

import "github.com/Fabriciocypreste/novonovo/internal/repository"

// AnalyticsResponse 统计汇总
type AnalyticsResponse struct {
	Totals            repository.Totals          `json:"totals"`
	ContentByType     []repository.TypeCount     `json:"content_by_type"`
	ContentByPlatform []repository.PlatformCount `json:"content_by_platform"`
}
