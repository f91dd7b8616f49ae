package service

import (
	"errors"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo         *repository.UserRepository
	recipeRepo       *repository.RecipeRepository
	subscriptionRepo *repository.SubscriptionRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	recipeRepo *repository.RecipeRepository,
	subscriptionRepo *repository.SubscriptionRepository,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		recipeRepo:       recipeRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// GetUser 获取用户主页信息，viewerID 非空时附带订阅状态
func (s *UserService) GetUser(userID int64, viewerID *int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	info := toUserInfo(user)
	info.RecipesCount, _ = s.recipeRepo.CountByAuthor(userID)
	if viewerID != nil && *viewerID != userID {
		info.IsSubscribed, _ = s.subscriptionRepo.Exists(*viewerID, userID)
	}
	return info, nil
}

// SetAvatar 设置用户头像 URL
// 头像是可空的一对一属性：未设置不是错误，读取方拿到 nil 即可
func (s *UserService) SetAvatar(userID int64, avatarURL string) (*dto.UserInfo, error) {
	user, err := s.userRepo.Update(userID, map[string]interface{}{"avatar": avatarURL})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// DeleteAvatar 清除用户头像
func (s *UserService) DeleteAvatar(userID int64) error {
	_, err := s.userRepo.Update(userID, map[string]interface{}{"avatar": nil})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
