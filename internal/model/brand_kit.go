package model

// BrandKit 品牌视觉配置，每个用户同一时间只有一条生效
type BrandKit struct {
	BaseModel

	UserID           string  `gorm:"size:64;index;not null" json:"user_id"`
	Name             string  `gorm:"size:255;not null" json:"name"`
	LogoURL          *string `gorm:"size:1024" json:"logo_url"`
	PrimaryColor     string  `gorm:"size:16" json:"primary_color"`
	SecondaryColor   string  `gorm:"size:16" json:"secondary_color"`
	AccentColor      string  `gorm:"size:16" json:"accent_color"`
	FontPrimary      string  `gorm:"size:64" json:"font_primary"`
	FontSecondary    string  `gorm:"size:64" json:"font_secondary"`
	BrandVoice       string  `gorm:"size:64" json:"brand_voice"`
	Tagline          *string `gorm:"size:255" json:"tagline"`
	BrandDescription *string `gorm:"type:text" json:"brand_description"`
	IsActive         bool    `gorm:"index" json:"is_active"`
}

func (BrandKit) TableName() string {
	return "brand_kits"
}

// ==================== 默认值 ====================

const (
	BrandKitDefaultName           = "Meu Brand Kit"
	BrandKitDefaultPrimaryColor   = "#8B5CF6"
	BrandKitDefaultSecondaryColor = "#EC4899"
	BrandKitDefaultAccentColor    = "#F59E0B"
	BrandKitDefaultFontPrimary    = "Inter"
	BrandKitDefaultFontSecondary  = "Montserrat"
	BrandKitDefaultVoice          = "conversacional"
)
