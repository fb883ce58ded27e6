package provider

import "strings"

type ImageSize string

const (
	ImageSizeSquare   ImageSize = "1024x1024"
	ImageSizeVertical ImageSize = "1024x1792"
	ImageSizeWide     ImageSize = "1792x1024"
)

type ImageQuality string

const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHD       ImageQuality = "hd"
)

type ImageStyle string

const (
	ImageStyleVivid   ImageStyle = "vivid"
	ImageStyleNatural ImageStyle = "natural"
)

// StockImageURL 生成失败或无图片凭证时使用的图库占位图
const StockImageURL = "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1024&h=1024&fit=crop&crop=center"

// platformSizes 平台到尺寸的静态映射，未列出的平台使用方图
var platformSizes = map[string]ImageSize{
	"instagram": ImageSizeSquare,
	"facebook":  ImageSizeSquare,
	"twitter":   ImageSizeSquare,
	"linkedin":  ImageSizeSquare,
	"youtube":   ImageSizeWide,
}

// SizeForPlatform 根据目标平台选择图片尺寸
func SizeForPlatform(platform string) ImageSize {
	if size, ok := platformSizes[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return size
	}
	return ImageSizeSquare
}

// ClampQuality 非法取值收敛到 standard
func ClampQuality(q string) ImageQuality {
	if strings.EqualFold(strings.TrimSpace(q), string(ImageQualityHD)) {
		return ImageQualityHD
	}
	return ImageQualityStandard
}

// ClampStyle 非法取值收敛到 vivid
func ClampStyle(s string) ImageStyle {
	if strings.EqualFold(strings.TrimSpace(s), string(ImageStyleNatural)) {
		return ImageStyleNatural
	}
	return ImageStyleVivid
}
