package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/model"
	"github.com/Fabriciocypreste/novonovo/internal/repository"
)

// ProjectService 项目与内容管理
type ProjectService struct {
	projectRepo repository.ProjectRepository
	contentRepo repository.ContentItemRepository
}

func NewProjectService(projectRepo repository.ProjectRepository, contentRepo repository.ContentItemRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		contentRepo: contentRepo,
	}
}

// ==================== 项目 ====================

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*model.Project, error) {
	project := &model.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Theme:       req.Theme,
		ProjectType: req.ProjectType,
		UserID:      model.DefaultUserID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// ==================== 内容 ====================

func (s *ProjectService) ListContentItems(ctx context.Context, projectID int64) ([]model.ContentItem, error) {
	items, err := s.contentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	return items, nil
}

// CreateContentItem project_id 以路径参数为准
func (s *ProjectService) CreateContentItem(ctx context.Context, projectID int64, req *dto.CreateContentItemRequest) (*model.ContentItem, error) {
	data, err := normalizeContentData(req.ContentType, req.ContentData)
	if err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	item := &model.ContentItem{
		ProjectID:          projectID,
		Title:              strings.TrimSpace(req.Title),
		ContentType:        req.ContentType,
		Platform:           req.Platform,
		ContentData:        data,
		ScheduledAt:        req.ScheduledAt,
		Status:             orDefault(req.Status, model.ContentStatusDraft),
		EngagementEstimate: req.EngagementEstimate,
	}
	if err := s.contentRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create content item: %w", err)
	}
	return item, nil
}

// normalizeContentData 字符串原样保存；JSON 对象必须与 content_type 对应的结构一致
func normalizeContentData(contentType string, raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContentData, err)
		}
		if !model.IsJSONObject(text) {
			return &text, nil
		}
	case '{':
		text = string(raw)
	default:
		return nil, fmt.Errorf("%w: must be a string or an object", ErrInvalidContentData)
	}

	payload, err := model.DecodeContentPayload(contentType, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContentData, err)
	}
	encoded, err := model.EncodeContentPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContentData, err)
	}
	return &encoded, nil
}
