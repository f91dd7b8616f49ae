package service

import (
	"errors"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorited = errors.New("您已经收藏过该菜谱了")
	ErrNotFavorited     = errors.New("该菜谱不在您的收藏中")
)

type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	recipeRepo   *repository.RecipeRepository
}

func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, recipeRepo *repository.RecipeRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, recipeRepo: recipeRepo}
}

// Favorite 收藏菜谱
// 先做存在性预检（快路径），数据库唯一约束是并发下的权威保障，
// 约束冲突同样翻译为 ErrAlreadyFavorited
func (s *FavoriteService) Favorite(userID, recipeID int64) (*dto.RecipeMinified, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.favoriteRepo.Exists(userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	if _, err := s.favoriteRepo.Create(userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	return toRecipeMinified(recipe), nil
}

// Unfavorite 取消收藏
// 删除不存在的记录是对调用方可见的失败，而不是静默成功
func (s *FavoriteService) Unfavorite(userID, recipeID int64) error {
	deleted, err := s.favoriteRepo.Delete(userID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFavorited
	}
	return nil
}

// ListMyFavorites 获取我收藏的菜谱列表
func (s *FavoriteService) ListMyFavorites(userID int64, page, pageSize int) (*dto.RecipeListData, error) {
	skip := (page - 1) * pageSize
	recipeIDs, total, err := s.favoriteRepo.GetRecipeIDs(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.GetByIDsWithAuthor(recipeIDs)
	if err != nil {
		return nil, err
	}

	// 按收藏时间原始顺序输出
	recipeMap := make(map[int64]int, len(recipes))
	for i := range recipes {
		recipeMap[recipes[i].ID] = i
	}

	items := make([]dto.RecipeInfo, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		if idx, ok := recipeMap[id]; ok {
			info := toRecipeInfo(&recipes[idx])
			info.IsFavorited = true
			items = append(items, *info)
		}
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &dto.RecipeListData{
		Recipes:    items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
