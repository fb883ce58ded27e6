package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
	"github.com/Fabriciocypreste/novonovo/internal/service"
)

// BrandKitController 品牌配置
type BrandKitController struct {
	brandKitService *service.BrandKitService
}

func NewBrandKitController(brandKitService *service.BrandKitService) *BrandKitController {
	return &BrandKitController{brandKitService: brandKitService}
}

// GetBrandKit 当前生效的品牌配置，没有时 data 为 null
// @Summary 当前品牌配置
// @Tags BrandKit
// @Produce json
// @Success 200 {object} dto.Response{data=model.BrandKit}
// @Router /api/brand-kit [get]
func (ctrl *BrandKitController) GetBrandKit(c *gin.Context) {
	kit, err := ctrl.brandKitService.GetActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch brand kit")
		return
	}
	if kit == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}
	respondOK(c, http.StatusOK, kit)
}

// SaveBrandKit 保存品牌配置
// @Summary 保存品牌配置，旧配置停用
// @Tags BrandKit
// @Accept json
// @Produce json
// @Param body body dto.SaveBrandKitRequest true "品牌配置"
// @Success 200 {object} dto.Response{data=model.BrandKit}
// @Failure 400 {object} dto.Response
// @Router /api/brand-kit [post]
func (ctrl *BrandKitController) SaveBrandKit(c *gin.Context) {
	var req dto.SaveBrandKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	kit, err := ctrl.brandKitService.Save(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to save brand kit")
		return
	}
	respondOK(c, http.StatusOK, kit)
}
