package dto

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Fabriciocypreste/novonovo/internal/model"
)

var registerOnce sync.Once

// RegisterValidators 向 gin 的校验器注册自定义标签: platform, content_type, notblank
// 可重复调用
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return model.KnownPlatforms[strings.ToLower(fl.Field().String())]
		})
		_ = v.RegisterValidation("content_type", func(fl validator.FieldLevel) bool {
			return model.IsContentType(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}
