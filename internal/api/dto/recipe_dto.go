package dto

import "time"

// RecipeIngredientInput 菜谱食材输入项
type RecipeIngredientInput struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int64 `json:"amount"`
}

// RecipeWriteRequest 创建/更新菜谱请求
// 数值边界与食材集合的校验在业务层完成，以便逐字段返回错误
type RecipeWriteRequest struct {
	Name        string                  `json:"name" binding:"required,max=256"`
	Text        string                  `json:"text" binding:"required"`
	CookingTime int                     `json:"cooking_time"`
	Ingredients []RecipeIngredientInput `json:"ingredients"`
	TagIDs      []int64                 `json:"tags"`
}

// RecipeIngredientInfo 菜谱食材明细
type RecipeIngredientInfo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

// RecipeInfo 菜谱详情
type RecipeInfo struct {
	ID                int64                  `json:"id"`
	Author            UserInfo               `json:"author"`
	Name              string                 `json:"name"`
	Text              string                 `json:"text"`
	CookingTime       int                    `json:"cooking_time"`
	Tags              []TagInfo              `json:"tags"`
	Ingredients       []RecipeIngredientInfo `json:"ingredients"`
	IsFavorited       bool                   `json:"is_favorited"`
	IsInShoppingCart  bool                   `json:"is_in_shopping_cart"`
	CreatedAt         time.Time              `json:"created_at"`
}

// RecipeMinified 菜谱简要信息（收藏/购物车操作返回）
type RecipeMinified struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeListData 菜谱列表数据
type RecipeListData struct {
	Recipes    []RecipeInfo `json:"recipes"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int64        `json:"total_pages"`
}
