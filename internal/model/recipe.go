package model

import "time"

// 菜谱相关的取值边界
const (
	CookingTimeMin = 1
	CookingTimeMax = 1440

	IngredientAmountMin = 1
	IngredientAmountMax = 2147483647
)

// Recipe 菜谱模型
type Recipe struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:菜谱标识" json:"id"`
	AuthorID    int64     `gorm:"not null;index:idx_recipes_author_id;comment:菜谱作者ID" json:"author_id"`
	Name        string    `gorm:"size:256;not null;comment:名称" json:"name"`
	Text        string    `gorm:"type:text;not null;comment:做法描述" json:"text"`
	CookingTime int       `gorm:"not null;check:chk_recipes_cooking_time,cooking_time >= 1 AND cooking_time <= 1440;comment:烹饪时长(分钟)" json:"cooking_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_recipes_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Author      User               `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient 菜谱-食材关联（带用量），同一菜谱内食材不可重复
type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;index:idx_recipe_ingredients_recipe_id;comment:菜谱ID" json:"recipe_id"`
	IngredientID int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;comment:食材ID" json:"ingredient_id"`
	Amount       int64 `gorm:"not null;check:chk_recipe_ingredients_amount,amount >= 1 AND amount <= 2147483647;comment:用量" json:"amount"`

	// 关联关系
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
