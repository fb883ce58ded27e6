package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Fabriciocypreste/novonovo/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	// 内存库每个连接独立，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Project{},
		&model.ContentItem{},
		&model.Template{},
		&model.BrandKit{},
		&model.UploadedImage{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

// ==================== 项目 ====================

func TestProjectRepo_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	first := &model.Project{Name: "Campanha Verão", UserID: model.DefaultUserID}
	second := &model.Project{Name: "Black Friday", Theme: strPtr("E-commerce"), UserID: model.DefaultUserID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Black Friday", projects[0].Name, "应按创建时间倒序")

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Campanha Verão", got.Name)

	ok, err := repo.Exists(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProjectRepo_ListEmpty(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

// ==================== 内容 ====================

func TestContentItemRepo_ListByProject(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepository(db)
	repo := NewContentItemRepository(db)
	ctx := context.Background()

	p := &model.Project{Name: "SEO", UserID: model.DefaultUserID}
	other := &model.Project{Name: "Outro", UserID: model.DefaultUserID}
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, projects.Create(ctx, other))

	require.NoError(t, repo.Create(ctx, &model.ContentItem{ProjectID: p.ID, Title: "Post 1", ContentType: model.ContentTypePost}))
	require.NoError(t, repo.Create(ctx, &model.ContentItem{ProjectID: p.ID, Title: "Post 2", ContentType: model.ContentTypePost}))
	require.NoError(t, repo.Create(ctx, &model.ContentItem{ProjectID: other.ID, Title: "Outro", ContentType: model.ContentTypeVideo}))

	items, err := repo.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Post 2", items[0].Title)
	assert.Equal(t, model.ContentStatusDraft, items[0].Status, "未指定状态时默认 draft")
}

// ==================== 品牌配置 ====================

func countActiveKits(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.BrandKit{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error)
	return count
}

func TestBrandKitRepo_Replace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandKitRepository(db)
	ctx := context.Background()

	active, err := repo.GetActive(ctx, model.DefaultUserID)
	require.NoError(t, err)
	assert.Nil(t, active)

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Replace(ctx, &model.BrandKit{
			UserID:       model.DefaultUserID,
			Name:         "Loja Aurora",
			PrimaryColor: "#112233",
		}))
	}
	assert.EqualValues(t, 1, countActiveKits(t, db, model.DefaultUserID))

	active, err = repo.GetActive(ctx, model.DefaultUserID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "Loja Aurora", active.Name)
	assert.True(t, active.IsActive)

	var total int64
	require.NoError(t, db.Model(&model.BrandKit{}).Count(&total).Error)
	assert.EqualValues(t, 2, total, "旧记录只停用不删除")
}

func TestBrandKitRepo_ScopedByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandKitRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, &model.BrandKit{UserID: model.DefaultUserID, Name: "Loja Aurora"}))
	require.NoError(t, repo.Replace(ctx, &model.BrandKit{UserID: "outra-loja", Name: "Loja Boreal"}))

	assert.EqualValues(t, 1, countActiveKits(t, db, model.DefaultUserID))
	assert.EqualValues(t, 1, countActiveKits(t, db, "outra-loja"))

	active, err := repo.GetActive(ctx, model.DefaultUserID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "Loja Aurora", active.Name)

	other, err := repo.GetActive(ctx, "outra-loja")
	require.NoError(t, err)
	require.NotNil(t, other)
	assert.Equal(t, "Loja Boreal", other.Name)

	none, err := repo.GetActive(ctx, "sem-marca")
	require.NoError(t, err)
	assert.Nil(t, none)
}

// ==================== 模板 ====================

func TestTemplateRepo(t *testing.T) {
	repo := NewTemplateRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Template{
		Name:         "Story Promo",
		Category:     strPtr("instagram"),
		TemplateData: datatypes.JSON(`{"layout":"vertical"}`),
		IsPremium:    true,
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.JSONEq(t, `{"layout":"vertical"}`, string(list[0].TemplateData))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

// ==================== 统计 ====================

func TestAnalyticsRepo(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepository(db)
	items := NewContentItemRepository(db)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	p := &model.Project{Name: "SEO", UserID: model.DefaultUserID}
	require.NoError(t, projects.Create(ctx, p))

	when := time.Now().Add(24 * time.Hour)
	seed := []*model.ContentItem{
		{ProjectID: p.ID, Title: "a", ContentType: model.ContentTypePost, Platform: strPtr("instagram"), Status: model.ContentStatusScheduled, ScheduledAt: &when},
		{ProjectID: p.ID, Title: "b", ContentType: model.ContentTypePost, Platform: strPtr("instagram")},
		{ProjectID: p.ID, Title: "c", ContentType: model.ContentTypeVideo, Platform: strPtr("youtube")},
		{ProjectID: p.ID, Title: "d", ContentType: model.ContentTypeLandingPage},
	}
	for _, item := range seed {
		require.NoError(t, items.Create(ctx, item))
	}

	totals, err := repo.GetTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{Projects: 1, Content: 4, Scheduled: 1}, *totals)

	byType, err := repo.CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, []TypeCount{
		{ContentType: "landing_page", Count: 1},
		{ContentType: "post", Count: 2},
		{ContentType: "video", Count: 1},
	}, byType)

	byPlatform, err := repo.CountByPlatform(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PlatformCount{
		{Platform: "instagram", Count: 2},
		{Platform: "youtube", Count: 1},
	}, byPlatform)
}

func TestAnalyticsRepo_Empty(t *testing.T) {
	repo := NewAnalyticsRepository(setupTestDB(t))

	totals, err := repo.GetTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Totals{}, *totals)
}
