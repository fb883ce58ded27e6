package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"github.com/Fabriciocypreste/novonovo/internal/config"
	"github.com/Fabriciocypreste/novonovo/internal/controller"
	"github.com/Fabriciocypreste/novonovo/internal/model"
	"github.com/Fabriciocypreste/novonovo/internal/provider"
	"github.com/Fabriciocypreste/novonovo/internal/repository"
	"github.com/Fabriciocypreste/novonovo/internal/router"
	"github.com/Fabriciocypreste/novonovo/internal/service"
	"github.com/Fabriciocypreste/novonovo/pkg/database"
	"github.com/Fabriciocypreste/novonovo/pkg/logger"
	"github.com/Fabriciocypreste/novonovo/pkg/utils"
)

const serviceName = "novonovo"

func main() {
	app := &cli.App{
		Name:  serviceName,
		Usage: "营销内容生成服务",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径，默认查找 ./config.yaml",
				EnvVars: []string{"NOVONOVO_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "启动 HTTP 服务",
				Action: runServe,
			},
			{
				Name:  "migrate",
				Usage: "执行数据库迁移",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "seed", Usage: "写入内置模板"},
				},
				Action: runMigrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ==================== 命令 ====================

func runServe(c *cli.Context) error {
	cfg, log, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	// 1. 初始化数据库
	db, err := database.InitDB(cfg.Database, log, model.All()...)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// 2. 初始化依赖
	deps, err := initDependencies(cfg, db, log)
	if err != nil {
		return err
	}

	if _, err := deps.Services.Template.Seed(c.Context); err != nil {
		log.Warn("写入内置模板失败", "error", err)
	}

	// 3. 初始化路由
	gin.SetMode(cfg.Server.Mode)
	r := router.New(log, *deps.Controllers, deps.RouterOptions)

	// 4. 启动服务
	return startServer(c.Context, cfg.Server, r, log)
}

func runMigrate(c *cli.Context) error {
	cfg, log, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.InitDB(cfg.Database, log, model.All()...)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if !c.Bool("seed") {
		return nil
	}
	n, err := service.NewTemplateService(repository.NewTemplateRepository(db)).Seed(c.Context)
	if err != nil {
		return err
	}
	log.Info("内置模板写入完成", "count", n)
	return nil
}

func bootstrap(c *cli.Context) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, log, nil
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB            *gorm.DB
	Repos         *Repositories
	Services      *Services
	Controllers   *router.Controllers
	RouterOptions router.Options
}

// Repositories 仓库集合
type Repositories struct {
	Project       repository.ProjectRepository
	ContentItem   repository.ContentItemRepository
	Template      repository.TemplateRepository
	BrandKit      repository.BrandKitRepository
	UploadedImage repository.UploadedImageRepository
	Analytics     repository.AnalyticsRepository
}

// Services 服务集合
type Services struct {
	Project    *service.ProjectService
	Generation *service.GenerationService
	BrandKit   *service.BrandKitService
	Template   *service.TemplateService
	Analytics  *service.AnalyticsService
	Upload     *service.UploadService
	Storage    service.StorageProvider
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Dependencies, error) {
	// -------- Repo 层 --------
	repos := &Repositories{
		Project:       repository.NewProjectRepository(db),
		ContentItem:   repository.NewContentItemRepository(db),
		Template:      repository.NewTemplateRepository(db),
		BrandKit:      repository.NewBrandKitRepository(db),
		UploadedImage: repository.NewUploadedImageRepository(db),
		Analytics:     repository.NewAnalyticsRepository(db),
	}

	// -------- 存储 & AI 供应商 --------
	storage, err := service.NewStorageProvider(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("存储服务初始化失败: %w", err)
	}

	selector := provider.NewSelector(provider.Config{
		OpenAIKey:        cfg.AI.OpenAIKey,
		OpenAIBaseURL:    cfg.AI.OpenAIBaseURL,
		OpenAITextModel:  cfg.AI.OpenAITextModel,
		OpenAIImageModel: cfg.AI.OpenAIImageModel,
		GeminiKey:        cfg.AI.GeminiKey,
		GeminiModel:      cfg.AI.GeminiModel,
	})
	log.Info("AI 供应商", "chain", selector.Chain())

	// -------- 业务服务 --------
	services := &Services{
		Project:    service.NewProjectService(repos.Project, repos.ContentItem),
		Generation: service.NewGenerationService(selector, utils.NewPublicHTTPClient(10*time.Second), log, cfg.Generation.Concurrency),
		BrandKit:   service.NewBrandKitService(repos.BrandKit),
		Template:   service.NewTemplateService(repos.Template),
		Analytics:  service.NewAnalyticsService(repos.Analytics),
		Upload:     service.NewUploadService(storage, repos.UploadedImage, log),
		Storage:    storage,
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Project:  controller.NewProjectController(services.Project),
		Generate: controller.NewGenerateController(services.Generation),
		BrandKit: controller.NewBrandKitController(services.BrandKit),
		Upload:   controller.NewUploadController(services.Upload),
		Catalog:  controller.NewCatalogController(services.Template, services.Analytics),
	}

	opts := router.Options{
		ServiceName: serviceName,
		RateLimit:   cfg.Generation.RateLimit,
		RateBurst:   cfg.Generation.RateBurst,
	}
	if local, ok := storage.(*service.LocalStorage); ok {
		opts.StaticPrefix = local.PublicURL()
		opts.StaticDir = local.Dir()
	}

	return &Dependencies{
		DB:            db,
		Repos:         repos,
		Services:      services,
		Controllers:   controllers,
		RouterOptions: opts,
	}, nil
}

// ==================== 服务启动 ====================

// startServer 启动服务，收到退出信号后优雅关闭
func startServer(ctx context.Context, cfg config.ServerConfig, r *gin.Engine, log *logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("服务启动", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 等待退出信号
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("服务启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}

	log.Info("服务已退出")
	return nil
}
