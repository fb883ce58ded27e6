package model

const UsageTypeReference = "reference"

// UploadedImage 用户上传的图片记录
type UploadedImage struct {
	BaseModel

	UserID    string `gorm:"size:64;index;not null" json:"user_id"`
	Filename  string `gorm:"size:255" json:"filename"`
	FileURL   string `gorm:"size:1024" json:"file_url"`
	FileType  string `gorm:"size:128" json:"file_type"`
	FileSize  int64  `json:"file_size"`
	UsageType string `gorm:"size:32;default:reference" json:"usage_type"`
}

func (UploadedImage) TableName() string {
	return "uploaded_images"
}
