package dto

// ShortLinkData 短链接数据
type ShortLinkData struct {
	RecipeID  int64  `json:"recipe_id"`
	Code      string `json:"code"`
	ShortLink string `json:"short_link"`
}
