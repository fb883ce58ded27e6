package model

// Project 内容项目
type Project struct {
	BaseModel

	Name        string  `gorm:"size:255;not null;comment:项目名称" json:"name"`
	Description *string `gorm:"type:text;comment:描述" json:"description"`
	Theme       *string `gorm:"size:255;comment:主题" json:"theme"`
	ProjectType *string `gorm:"size:64;comment:项目类型" json:"project_type"`
	UserID      string  `gorm:"size:64;index;not null;comment:所属用户" json:"user_id"`
}

func (Project) TableName() string {
	return "projects"
}
