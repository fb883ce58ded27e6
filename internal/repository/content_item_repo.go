package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fabriciocypreste/novonovo/internal/model"
)

// ContentItemRepository 内容仓储接口
type ContentItemRepository interface {
	Create(ctx context.Context, item *model.ContentItem) error
	GetByID(ctx context.Context, id int64) (*model.ContentItem, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ContentItem, error)
}

type contentItemRepo struct {
	db *gorm.DB
}

// NewContentItemRepository 创建内容仓储
func NewContentItemRepository(db *gorm.DB) ContentItemRepository {
	return &contentItemRepo{db: db}
}

func (r *contentItemRepo) Create(ctx context.Context, item *model.ContentItem) error {
	if item.Status == "" {
		item.Status = model.ContentStatusDraft
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *contentItemRepo) GetByID(ctx context.Context, id int64) (*model.ContentItem, error) {
	var item model.ContentItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *contentItemRepo) ListByProject(ctx context.Context, projectID int64) ([]model.ContentItem, error) {
	items := make([]model.ContentItem, 0)
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}
