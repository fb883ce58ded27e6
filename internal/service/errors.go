package service

import "errors"

var (
	// ErrInvalidInput 请求参数不满足业务要求，对应 400
	ErrInvalidInput = errors.New("invalid input")
	// ErrProjectNotFound 项目不存在，对应 404
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidContentData content_data 与 content_type 不匹配，对应 400
	ErrInvalidContentData = errors.New("invalid content_data")
	// ErrImageGeneration 图片供应商失败，响应需附带占位图
	ErrImageGeneration = errors.New("image generation failed")
)
