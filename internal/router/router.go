package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/controller"
	"github.com/Fabriciocypreste/novonovo/internal/middleware"
	"github.com/Fabriciocypreste/novonovo/pkg/logger"

	_ "github.com/Fabriciocypreste/novonovo/docs"
)

// Controllers 路由依赖的控制器
type Controllers struct {
	Project  *controller.ProjectController
	Generate *controller.GenerateController
	BrandKit *controller.BrandKitController
	Upload   *controller.UploadController
	Catalog  *controller.CatalogController
}

// Options 路由选项
type Options struct {
	ServiceName string

	// 生成接口每客户端限流，RateLimit<=0 时不限流
	RateLimit float64
	RateBurst int

	// 本地存储时挂载静态目录
	StaticPrefix string
	StaticDir    string
}

// New 创建引擎并注册中间件与路由
func New(log *logger.Logger, ctl Controllers, opts Options) *gin.Engine {
	dto.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(middleware.RequestLogger(log))

	// 前端与 worker 一致，允许任意来源
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	InitRoutes(r, ctl, opts)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctl Controllers, opts Options) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8787/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", controller.Health)

	if opts.StaticDir != "" && opts.StaticPrefix != "" {
		r.Static(opts.StaticPrefix, opts.StaticDir)
	}

	// 2. API 路由组
	api := r.Group("/api")
	{
		api.GET("/health", controller.Health)
		api.GET("/ai/status", ctl.Generate.AIStatus)
		api.GET("/suggestions", ctl.Generate.Suggestions)

		// 项目与内容
		projects := api.Group("/projects")
		{
			projects.GET("", ctl.Project.ListProjects)
			projects.POST("", ctl.Project.CreateProject)
			projects.GET("/:id/content", ctl.Project.ListContentItems)
			projects.POST("/:id/content", ctl.Project.CreateContentItem)
		}

		// 生成接口走供应商配额，单独限流
		generate := api.Group("/generate", middleware.RateLimit(opts.RateLimit, opts.RateBurst))
		{
			generate.POST("/content", ctl.Generate.GenerateContent)
			generate.POST("/posts", ctl.Generate.GeneratePosts)
			generate.POST("/single", ctl.Generate.GenerateSingle)
			generate.POST("/image", ctl.Generate.GenerateImage)
			generate.POST("/image-with-reference", ctl.Generate.GenerateImageWithReference)
			generate.POST("/video-with-reference", ctl.Generate.GenerateVideoWithReference)
		}

		api.GET("/brand-kit", ctl.BrandKit.GetBrandKit)
		api.POST("/brand-kit", ctl.BrandKit.SaveBrandKit)

		api.POST("/upload/image", ctl.Upload.UploadImage)

		api.GET("/analytics", ctl.Catalog.Analytics)
		api.GET("/templates", ctl.Catalog.ListTemplates)
	}
}
