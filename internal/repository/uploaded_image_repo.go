package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fabriciocypreste/novonovo/internal/model"
)

// UploadedImageRepository 上传图片仓储接口
type UploadedImageRepository interface {
	Create(ctx context.Context, img *model.UploadedImage) error
}

type uploadedImageRepo struct {
	db *gorm.DB
}

func NewUploadedImageRepository(db *gorm.DB) UploadedImageRepository {
	return &uploadedImageRepo{db: db}
}

func (r *uploadedImageRepo) Create(ctx context.Context, img *model.UploadedImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}
