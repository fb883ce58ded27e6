package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fabriciocypreste/novonovo/internal/service"
)

// UploadController 图片上传
type UploadController struct {
	uploadService *service.UploadService
}

func NewUploadController(uploadService *service.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// UploadImage 上传图片
// @Summary 上传参考图或素材
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "图片文件"
// @Param usage_type formData string false "用途，默认 reference"
// @Success 200 {object} dto.Response{data=dto.UploadImageResult}
// @Failure 400 {object} dto.Response
// @Router /api/upload/image [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondInvalid(c, fmt.Errorf("image file is required: %w", err))
		return
	}
	if fileHeader.Size > service.MaxUploadSize {
		respondInvalid(c, fmt.Errorf("file exceeds %d bytes", service.MaxUploadSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInvalid(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxUploadSize+1))
	if err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := ctrl.uploadService.UploadImage(c.Request.Context(), fileHeader.Filename, data, c.PostForm("usage_type"))
	switch {
	case err == nil:
		respondOK(c, http.StatusOK, result)
	case errors.Is(err, service.ErrInvalidInput):
		respondInvalid(c, err)
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to upload image")
	}
}
