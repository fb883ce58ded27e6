package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/service"
)

// CatalogController 模板、统计与健康检查
type CatalogController struct {
	templateService  *service.TemplateService
	analyticsService *service.AnalyticsService
}

func NewCatalogController(templateService *service.TemplateService, analyticsService *service.AnalyticsService) *CatalogController {
	return &CatalogController{
		templateService:  templateService,
		analyticsService: analyticsService,
	}
}

// ListTemplates 模板列表
// @Summary 模板列表
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.Response{data=[]model.Template}
// @Router /api/templates [get]
func (ctrl *CatalogController) ListTemplates(c *gin.Context) {
	templates, err := ctrl.templateService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch templates")
		return
	}
	respondOK(c, http.StatusOK, templates)
}

// Analytics 内容统计
// @Summary 项目与内容统计
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.Response{data=dto.AnalyticsResponse}
// @Router /api/analytics [get]
func (ctrl *CatalogController) Analytics(c *gin.Context) {
	summary, err := ctrl.analyticsService.Summary(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}
	respondOK(c, http.StatusOK, summary)
}

// Health 健康检查
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
