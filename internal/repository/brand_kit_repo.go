package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Fabriciocypreste/novonovo/internal/model"
)

// BrandKitRepository 品牌配置仓储接口
type BrandKitRepository interface {
	// GetActive 该用户没有生效记录时返回 nil, nil
	GetActive(ctx context.Context, userID string) (*model.BrandKit, error)
	// Replace 先停用该用户的全部记录再插入新记录，两步之间不加事务
	Replace(ctx context.Context, kit *model.BrandKit) error
}

type brandKitRepo struct {
	db *gorm.DB
}

func NewBrandKitRepository(db *gorm.DB) BrandKitRepository {
	return &brandKitRepo{db: db}
}

func (r *brandKitRepo) GetActive(ctx context.Context, userID string) (*model.BrandKit, error) {
	var kit model.BrandKit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC, id DESC").
		First(&kit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kit, nil
}

func (r *brandKitRepo) Replace(ctx context.Context, kit *model.BrandKit) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.BrandKit{}).
		Where("user_id = ?", kit.UserID).
		Update("is_active", false).Error; err != nil {
		return err
	}
	kit.IsActive = true
	return db.Create(kit).Error
}
