package model

import "time"

// Subscription 订阅关系模型，(订阅者, 作者) 组合唯一，且不允许订阅自己
type Subscription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:订阅记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_subscription_user_author;index:idx_subscriptions_user_id;comment:订阅者ID" json:"user_id"`
	AuthorID  int64     `gorm:"not null;uniqueIndex:uq_subscription_user_author;index:idx_subscriptions_author_id;check:chk_no_self_subscription,user_id <> author_id;comment:被订阅作者ID" json:"author_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_subscriptions_created_at;comment:订阅时间" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
