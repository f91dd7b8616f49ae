package repository

import (
	"kulina-go/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create 创建订阅关系，唯一约束兜底防并发重复
func (r *SubscriptionRepository) Create(userID, authorID int64) (*model.Subscription, error) {
	sub := &model.Subscription{UserID: userID, AuthorID: authorID}
	if err := r.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete 删除订阅关系，返回是否确实删除了行
func (r *SubscriptionRepository) Delete(userID, authorID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查订阅关系是否存在
func (r *SubscriptionRepository) Exists(userID, authorID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

// GetAuthorIDs 获取用户订阅的作者 ID 列表（分页）
func (r *SubscriptionRepository) GetAuthorIDs(userID int64, skip, limit int) ([]int64, error) {
	var authorIDs []int64
	err := r.db.Model(&model.Subscription{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Pluck("author_id", &authorIDs).Error
	return authorIDs, err
}

// CountByUser 统计用户的订阅数
func (r *SubscriptionRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountSubscribers 统计作者的订阅者数
func (r *SubscriptionRepository) CountSubscribers(authorID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
