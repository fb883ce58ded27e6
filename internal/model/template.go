package model

import "gorm.io/datatypes"

// Template 设计模板，只读目录，由 migrate --seed 写入
type Template struct {
	BaseModel

	Name         string         `gorm:"size:255;not null" json:"name"`
	Category     *string        `gorm:"size:64;index" json:"category"`
	TemplateType *string        `gorm:"size:64" json:"template_type"`
	Dimensions   *string        `gorm:"size:32" json:"dimensions"`
	TemplateData datatypes.JSON `json:"template_data"`
	IsPremium    bool           `gorm:"default:false" json:"is_premium"`
}

func (Template) TableName() string {
	return "templates"
}
