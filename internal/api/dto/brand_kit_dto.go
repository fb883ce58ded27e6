package dto

// SaveBrandKitRequest 保存品牌配置，未填写的字段使用默认值
type SaveBrandKitRequest struct {
	Name             string  `json:"name"`
	LogoURL          *string `json:"logo_url" binding:"omitempty,url"`
	PrimaryColor     string  `json:"primary_color" binding:"omitempty,hexcolor"`
	SecondaryColor   string  `json:"secondary_color" binding:"omitempty,hexcolor"`
	AccentColor      string  `json:"accent_color" binding:"omitempty,hexcolor"`
	FontPrimary      string  `json:"font_primary"`
	FontSecondary    string  `json:"font_secondary"`
	BrandVoice       string  `json:"brand_voice"`
	Tagline          *string `json:"tagline"`
	BrandDescription *string `json:"brand_description"`
}
