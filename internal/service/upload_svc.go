package service

import (
	"context"
	"fmt"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/model"
	"github.com/Fabriciocypreste/novonovo/internal/repository"
	"github.com/Fabriciocypreste/novonovo/pkg/logger"
)

// MaxUploadSize 单个上传文件上限
const MaxUploadSize = 10 << 20

// UploadService 图片上传：写入存储并记录
type UploadService struct {
	storage StorageProvider
	repo    repository.UploadedImageRepository
	logger  *logger.Logger
}

func NewUploadService(storage StorageProvider, repo repository.UploadedImageRepository, log *logger.Logger) *UploadService {
	if log == nil {
		log = logger.Nop()
	}
	return &UploadService{storage: storage, repo: repo, logger: log}
}

// UploadImage 文件类型按内容识别，非图片直接拒绝
func (s *UploadService) UploadImage(ctx context.Context, filename string, data []byte, usageType string) (*dto.UploadImageResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if len(data) > MaxUploadSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, MaxUploadSize)
	}

	fileType := DetectContentType(data)
	if !isImageType(fileType) {
		return nil, fmt.Errorf("%w: unsupported file type %s", ErrInvalidInput, fileType)
	}
	usageType = orDefault(usageType, model.UsageTypeReference)

	url, err := s.storage.Upload(ctx, data, filename, fileType)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	img := &model.UploadedImage{
		UserID:    model.DefaultUserID,
		Filename:  filename,
		FileURL:   url,
		FileType:  fileType,
		FileSize:  int64(len(data)),
		UsageType: usageType,
	}
	if err := s.repo.Create(ctx, img); err != nil {
		// 记录失败时清理已写入的文件
		if delErr := s.storage.Delete(ctx, url); delErr != nil {
			s.logger.Warn("清理上传文件失败", "url", url, "error", delErr)
		}
		return nil, fmt.Errorf("record upload: %w", err)
	}

	return &dto.UploadImageResult{
		ID:        img.ID,
		URL:       url,
		Filename:  filename,
		FileType:  fileType,
		FileSize:  img.FileSize,
		UsageType: usageType,
	}, nil
}

func isImageType(mime string) bool {
	switch mime {
	case "image/png", "image/jpeg", "image/gif", "image/webp", "image/bmp", "image/avif", "image/heic":
		return true
	}
	return false
}
