package model

// Tag 标签模型
type Tag struct {
	ID    int64  `gorm:"primaryKey;autoIncrement;comment:标签标识" json:"id"`
	Name  string `gorm:"size:32;not null;uniqueIndex;comment:名称" json:"name"`
	Color string `gorm:"size:7;not null;default:'#FFFFFF';comment:颜色(HEX)" json:"color"`
	Slug  string `gorm:"size:32;not null;uniqueIndex;comment:标签别名" json:"slug"`
}

func (Tag) TableName() string {
	return "tags"
}
