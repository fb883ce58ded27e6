package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fabriciocypreste/novonovo/internal/model"
)

// ==================== 仓储接口 ====================

// ProjectRepository 项目仓储接口
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// ==================== 仓储实现 ====================

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepository 创建项目仓储
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List 按创建时间倒序
func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
