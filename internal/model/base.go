package model

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// DefaultUserID 鉴权由外部负责，所有数据归属固定用户
const DefaultUserID = "default-user"

// All 需要迁移的全部模型
func All() []any {
	return []any{
		&Project{},
		&ContentItem{},
		&Template{},
		&BrandKit{},
		&UploadedImage{},
	}
}
