package model

import "time"

// ShortLinkCodeMaxLength 短码的最大长度（URL-safe）
const ShortLinkCodeMaxLength = 16

// ShortLink 菜谱短链接，一个菜谱至多一条记录，短码全局唯一
type ShortLink struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:短链接ID" json:"id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:uq_short_link_recipe;comment:菜谱ID" json:"recipe_id"`
	Code      string    `gorm:"size:16;not null;uniqueIndex:uq_short_link_code;comment:短码" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`

	// 关联关系
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}

func (ShortLink) TableName() string {
	return "short_links"
}
