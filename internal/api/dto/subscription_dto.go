package dto

// SubscriptionInfo 订阅的作者信息
type SubscriptionInfo struct {
	Author       UserInfo `json:"author"`
	RecipesCount int64    `json:"recipes_count"`
}

// SubscriptionListData 订阅列表数据
type SubscriptionListData struct {
	Authors    []SubscriptionInfo `json:"authors"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int64              `json:"total_pages"`
}
