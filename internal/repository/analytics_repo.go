package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fabriciocypreste/novonovo/internal/model"
)

// ==================== 仓储接口 ====================

// AnalyticsRepository 内容统计仓储接口
type AnalyticsRepository interface {
	GetTotals(ctx context.Context) (*Totals, error)
	CountByType(ctx context.Context) ([]TypeCount, error)
	CountByPlatform(ctx context.Context) ([]PlatformCount, error)
}

// ==================== 统计结构 ====================

// Totals 总量统计
type Totals struct {
	Projects  int64 `json:"projects"`
	Content   int64 `json:"content"`
	Scheduled int64 `json:"scheduled"`
}

type TypeCount struct {
	ContentType string `json:"content_type"`
	Count       int64  `json:"count"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

// ==================== 仓储实现 ====================

type analyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) GetTotals(ctx context.Context) (*Totals, error) {
	var totals Totals
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Project{}).Count(&totals.Projects).Error; err != nil {
		return nil, err
	}

	var content struct {
		Content   int64
		Scheduled int64
	}
	err := db.Model(&model.ContentItem{}).
		Select(`
			COUNT(*) as content,
			COALESCE(SUM(CASE WHEN status = 'scheduled' THEN 1 ELSE 0 END), 0) as scheduled
		`).Scan(&content).Error
	if err != nil {
		return nil, err
	}
	totals.Content = content.Content
	totals.Scheduled = content.Scheduled
	return &totals, nil
}

func (r *analyticsRepo) CountByType(ctx context.Context) ([]TypeCount, error) {
	stats := make([]TypeCount, 0)
	err := r.db.WithContext(ctx).Model(&model.ContentItem{}).
		Select("content_type, COUNT(*) as count").
		Group("content_type").
		Order("content_type ASC").
		Scan(&stats).Error
	return stats, err
}

// CountByPlatform 忽略未设置平台的内容
func (r *analyticsRepo) CountByPlatform(ctx context.Context) ([]PlatformCount, error) {
	stats := make([]PlatformCount, 0)
	err := r.db.WithContext(ctx).Model(&model.ContentItem{}).
		Where("platform IS NOT NULL").
		Select("platform, COUNT(*) as count").
		Group("platform").
		Order("platform ASC").
		Scan(&stats).Error
	return stats, err
}
