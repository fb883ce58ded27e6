package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fabriciocypreste/novonovo/internal/model"
)

// TemplateRepository 模板仓储接口
type TemplateRepository interface {
	Create(ctx context.Context, tpl *model.Template) error
	List(ctx context.Context) ([]model.Template, error)
	Count(ctx context.Context) (int64, error)
}

type templateRepo struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, tpl *model.Template) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

func (r *templateRepo) List(ctx context.Context) ([]model.Template, error) {
	templates := make([]model.Template, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&templates).Error
	return templates, err
}

func (r *templateRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Template{}).Count(&count).Error
	return count, err
}
