package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fabriciocypreste/novonovo/internal/config"
	"github.com/Fabriciocypreste/novonovo/internal/model"
	"github.com/Fabriciocypreste/novonovo/internal/repository"
)

// ==================== Mock 实现 ====================

type recordingStorage struct {
	uploaded []string
	deleted  []string
}

func (r *recordingStorage) Upload(ctx context.Context, data []byte, filename string, contentType string) (string, error) {
	url := "https://store/" + filename
	r.uploaded = append(r.uploaded, url)
	return url, nil
}

func (r *recordingStorage) Delete(ctx context.Context, url string) error {
	r.deleted = append(r.deleted, url)
	return nil
}

type failingImageRepo struct{}

func (failingImageRepo) Create(ctx context.Context, img *model.UploadedImage) error {
	return errors.New("disk full")
}

// ==================== 测试用例 ====================

func TestUploadService_UploadImage(t *testing.T) {
	db := newServiceTestDB(t)
	storage, err := NewLocalStorage(config.StorageConfig{LocalDir: t.TempDir()})
	require.NoError(t, err)

	svc := NewUploadService(storage, repository.NewUploadedImageRepository(db), nil)
	res, err := svc.UploadImage(context.Background(), "logo.png", pngHeader, "")
	require.NoError(t, err)

	assert.NotZero(t, res.ID)
	assert.Equal(t, "image/png", res.FileType)
	assert.Equal(t, model.UsageTypeReference, res.UsageType)
	assert.Equal(t, int64(len(pngHeader)), res.FileSize)
	assert.True(t, strings.HasPrefix(res.URL, "/uploads/"))

	var stored model.UploadedImage
	require.NoError(t, db.First(&stored, res.ID).Error)
	assert.Equal(t, model.DefaultUserID, stored.UserID)
	assert.Equal(t, res.URL, stored.FileURL)
}

func TestUploadService_Rejects(t *testing.T) {
	db := newServiceTestDB(t)
	storage := &recordingStorage{}
	svc := NewUploadService(storage, repository.NewUploadedImageRepository(db), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		data []byte
	}{
		{"空文件", nil},
		{"文本伪装成图片", []byte("not really a png")},
		{"带脚本的 SVG", []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(document.cookie)</script></svg>`)},
		{"超过大小上限", append(append([]byte{}, pngHeader...), make([]byte, MaxUploadSize)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadImage(ctx, "fake.png", tt.data, "")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, storage.uploaded)
}

func TestUploadService_CleansUpWhenRecordFails(t *testing.T) {
	storage := &recordingStorage{}
	svc := NewUploadService(storage, failingImageRepo{}, nil)

	_, err := svc.UploadImage(context.Background(), "a.png", pngHeader, "logo")
	require.Error(t, err)
	assert.Equal(t, storage.uploaded, storage.deleted)
}
