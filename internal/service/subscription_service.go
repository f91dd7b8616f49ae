package service

import (
	"errors"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCannotSubscribeSelf = errors.New("不能订阅自己")
	ErrAlreadySubscribed   = errors.New("您已经订阅过该作者了")
	ErrNotSubscribed       = errors.New("您尚未订阅该作者")
)

type SubscriptionService struct {
	subscriptionRepo *repository.SubscriptionRepository
	userRepo         *repository.UserRepository
	recipeRepo       *repository.RecipeRepository
}

func NewSubscriptionService(
	subscriptionRepo *repository.SubscriptionRepository,
	userRepo *repository.UserRepository,
	recipeRepo *repository.RecipeRepository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		recipeRepo:       recipeRepo,
	}
}

// Subscribe 订阅作者
// 自订阅在进库前就拒绝；重复订阅由预检加唯一约束双重拦截
func (s *SubscriptionService) Subscribe(userID, authorID int64) (*dto.SubscriptionInfo, error) {
	if userID == authorID {
		return nil, ErrCannotSubscribeSelf
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.subscriptionRepo.Exists(userID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	if _, err := s.subscriptionRepo.Create(userID, authorID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	recipesCount, _ := s.recipeRepo.CountByAuthor(authorID)

	info := toUserInfo(author)
	info.IsSubscribed = true
	info.RecipesCount = recipesCount

	return &dto.SubscriptionInfo{
		Author:       *info,
		RecipesCount: recipesCount,
	}, nil
}

// Unsubscribe 取消订阅
func (s *SubscriptionService) Unsubscribe(userID, authorID int64) error {
	deleted, err := s.subscriptionRepo.Delete(userID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotSubscribed
	}
	return nil
}

// ListSubscriptions 获取我订阅的作者列表
func (s *SubscriptionService) ListSubscriptions(userID int64, page, pageSize int) (*dto.SubscriptionListData, error) {
	skip := (page - 1) * pageSize
	authorIDs, err := s.subscriptionRepo.GetAuthorIDs(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := s.subscriptionRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	authors, err := s.userRepo.GetByIDs(authorIDs)
	if err != nil {
		return nil, err
	}

	// 按订阅时间原始顺序输出
	authorMap := make(map[int64]int, len(authors))
	for i := range authors {
		authorMap[authors[i].ID] = i
	}

	items := make([]dto.SubscriptionInfo, 0, len(authorIDs))
	for _, id := range authorIDs {
		idx, ok := authorMap[id]
		if !ok {
			continue
		}
		recipesCount, _ := s.recipeRepo.CountByAuthor(id)

		info := toUserInfo(&authors[idx])
		info.IsSubscribed = true
		info.RecipesCount = recipesCount

		items = append(items, dto.SubscriptionInfo{
			Author:       *info,
			RecipesCount: recipesCount,
		})
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &dto.SubscriptionListData{
		Authors:    items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// IsSubscribed 查询订阅状态
func (s *SubscriptionService) IsSubscribed(userID, authorID int64) (bool, error) {
	return s.subscriptionRepo.Exists(userID, authorID)
}
