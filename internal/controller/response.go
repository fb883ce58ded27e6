package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
)

// ==================== 统一响应 ====================

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, dto.Response{Success: true, Data: data})
}

// respondGenerated 生成类接口附带供应商标识
func respondGenerated(c *gin.Context, data any, provider, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Success:  true,
		Data:     data,
		Provider: provider,
		Message:  message,
	})
}

// respondInvalid 请求结构错误
func respondInvalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Response{
		Success: false,
		Error:   "Invalid request",
		Message: err.Error(),
	})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.Response{Success: false, Error: msg})
}
