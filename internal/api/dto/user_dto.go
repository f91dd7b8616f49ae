package dto

// UserInfo 用户信息
type UserInfo struct {
	ID           int64   `json:"id"`
	UserName     string  `json:"user_name"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Avatar       *string `json:"avatar"`
	IsSubscribed bool    `json:"is_subscribed"`
	RecipesCount int64   `json:"recipes_count"`
}

// SetAvatarRequest 设置头像请求（头像为外部存储的 URL）
type SetAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,url,max=500"`
}
