package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/provider"
	"github.com/Fabriciocypreste/novonovo/internal/service"
)

// ==================== 控制器 ====================

// GenerateController 内容生成，供应商失败时文本接口仍返回 200
type GenerateController struct {
	generationService *service.GenerationService
}

func NewGenerateController(generationService *service.GenerationService) *GenerateController {
	return &GenerateController{generationService: generationService}
}

// ==================== 文本生成 ====================

// GenerateContent 按主题批量生成
// @Summary 每个主题生成 post/video/landing 三项内容
// @Tags Generate
// @Accept json
// @Produce json
// @Param body body dto.GenerateContentRequest true "主题列表"
// @Success 200 {object} dto.Response{data=[]dto.ThemeContent}
// @Failure 400 {object} dto.Response
// @Router /api/generate/content [post]
func (ctrl *GenerateController) GenerateContent(c *gin.Context) {
	var req dto.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := ctrl.generationService.GenerateContent(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to generate content")
		return
	}
	respondGenerated(c, result.Items, result.Provider, result.Message)
}

// GeneratePosts 批量帖子
// @Summary 围绕一个话题生成 count 条帖子
// @Tags Generate
// @Accept json
// @Produce json
// @Param body body dto.GeneratePostsRequest true "话题"
// @Success 200 {object} dto.Response{data=[]dto.PostSuggestion}
// @Failure 400 {object} dto.Response
// @Router /api/generate/posts [post]
func (ctrl *GenerateController) GeneratePosts(c *gin.Context) {
	var req dto.GeneratePostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := ctrl.generationService.GeneratePosts(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to generate posts")
		return
	}
	respondGenerated(c, result.Posts, result.Provider, "")
}

// GenerateSingle 单条生成
// @Summary 按类型生成一条内容，可指定供应商或自定义提示词
// @Tags Generate
// @Accept json
// @Produce json
// @Param body body dto.GenerateSingleRequest true "生成参数"
// @Success 200 {object} dto.Response{data=dto.SingleContent}
// @Failure 400 {object} dto.Response
// @Router /api/generate/single [post]
func (ctrl *GenerateController) GenerateSingle(c *gin.Context) {
	var req dto.GenerateSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := ctrl.generationService.GenerateSingle(c.Request.Context(), &req)
	if err != nil {
		ctrl.handleError(c, err, "Failed to generate content")
		return
	}
	respondGenerated(c, result, result.Provider, "")
}

// GenerateVideoWithReference 视频脚本
// @Summary 生成视频脚本，可附带参考图
// @Tags Generate
// @Accept json
// @Produce json
// @Param body body dto.GenerateVideoWithReferenceRequest true "脚本参数"
// @Success 200 {object} dto.Response{data=dto.VideoScript}
// @Failure 400 {object} dto.Response
// @Router /api/generate/video-with-reference [post]
func (ctrl *GenerateController) GenerateVideoWithReference(c *gin.Context) {
	var req dto.GenerateVideoWithReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := ctrl.generationService.GenerateVideoWithReference(c.Request.Context(), &req)
	if err != nil {
		ctrl.handleError(c, err, "Failed to generate video script")
		return
	}
	respondGenerated(c, result, result.Provider, "")
}

// ==================== 图片生成 ====================

// GenerateImage 图片生成
// @Summary 生成营销图片，失败时返回 fallback_image
// @Tags Generate
// @Accept json
// @Produce json
// @Param body body dto.GenerateImageRequest true "图片参数"
// @Success 200 {object} dto.Response{data=dto.GeneratedImage}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /api/generate/image [post]
func (ctrl *GenerateController) GenerateImage(c *gin.Context) {
	var req dto.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := ctrl.generationService.GenerateImage(c.Request.Context(), &req)
	if err != nil {
		ctrl.handleError(c, err, "Failed to generate image")
		return
	}
	respondGenerated(c, result, result.Provider, "")
}

// GenerateImageWithReference 参考图生成图片
// @Summary 基于参考图生成图片
// @Tags Generate
// @Accept json
// @Produce json
// @Param body body dto.GenerateImageWithReferenceRequest true "图片参数"
// @Success 200 {object} dto.Response{data=dto.GeneratedImage}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /api/generate/image-with-reference [post]
func (ctrl *GenerateController) GenerateImageWithReference(c *gin.Context) {
	var req dto.GenerateImageWithReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := ctrl.generationService.GenerateImageWithReference(c.Request.Context(), &req)
	if err != nil {
		ctrl.handleError(c, err, "Failed to generate image")
		return
	}
	respondGenerated(c, result, result.Provider, "")
}

// ==================== 其他 ====================

// Suggestions 热门主题
// @Summary 热门主题建议
// @Tags Generate
// @Produce json
// @Success 200 {object} dto.Response{data=[]provider.Suggestion}
// @Router /api/suggestions [get]
func (ctrl *GenerateController) Suggestions(c *gin.Context) {
	list, name := ctrl.generationService.Suggestions(c.Request.Context())
	respondGenerated(c, list, string(name), "")
}

// AIStatus 供应商状态
// @Summary 各供应商可用状态与推荐供应商
// @Tags System
// @Produce json
// @Success 200 {object} dto.Response{data=provider.Status}
// @Router /api/ai/status [get]
func (ctrl *GenerateController) AIStatus(c *gin.Context) {
	respondOK(c, http.StatusOK, ctrl.generationService.Status())
}

func (ctrl *GenerateController) handleError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondInvalid(c, err)
	case errors.Is(err, service.ErrImageGeneration):
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.Response{
			Success:       false,
			Error:         msg,
			FallbackImage: provider.StockImageURL,
		})
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, msg)
	}
}
