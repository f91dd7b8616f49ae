package model

// User 用户模型
type User struct {
	ID        int64   `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName  string  `gorm:"size:150;not null;uniqueIndex;comment:用户名" json:"user_name"`
	Email     string  `gorm:"size:254;not null;uniqueIndex;comment:邮箱" json:"email"`
	Password  string  `gorm:"size:255;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	FirstName string  `gorm:"size:150;comment:名" json:"first_name"`
	LastName  string  `gorm:"size:150;comment:姓" json:"last_name"`
	Avatar    *string `gorm:"size:500;comment:用户头像" json:"avatar"` // 可为空，缺失不是错误

	// 关联关系
	Recipes       []Recipe       `gorm:"foreignKey:AuthorID" json:"recipes,omitempty"`
	Favorites     []Favorite     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"subscriptions,omitempty"`
}

func (User) TableName() string {
	return "users"
}
