package dto

// SearchRecipeRequest 菜谱搜索请求
type SearchRecipeRequest struct {
	Keyword  string `form:"q" binding:"required,min=1,max=128"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// SearchRecipeData 菜谱搜索结果
type SearchRecipeData struct {
	Recipes    []RecipeInfo `json:"recipes"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int64        `json:"total_pages"`
	Source     string       `json:"source"` // es 或 db
}
