package service

import (
	"errors"
	"fmt"
	"strings"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyInCart = errors.New("该菜谱已在您的购物车中")
	ErrNotInCart     = errors.New("该菜谱不在您的购物车中")
)

// EmptyShoppingListLine 购物车为空时清单的唯一一行
const EmptyShoppingListLine = "购物清单为空"

type CartService struct {
	cartRepo   *repository.CartRepository
	recipeRepo *repository.RecipeRepository
}

func NewCartService(cartRepo *repository.CartRepository, recipeRepo *repository.RecipeRepository) *CartService {
	return &CartService{cartRepo: cartRepo, recipeRepo: recipeRepo}
}

// AddToCart 将菜谱加入购物车
// 预检 + 唯一约束双重保障，约束冲突翻译为 ErrAlreadyInCart
func (s *CartService) AddToCart(userID, recipeID int64) (*dto.RecipeMinified, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.cartRepo.Exists(userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInCart
	}

	if _, err := s.cartRepo.Create(userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInCart
		}
		return nil, err
	}

	return toRecipeMinified(recipe), nil
}

// RemoveFromCart 从购物车移除菜谱
func (s *CartService) RemoveFromCart(userID, recipeID int64) error {
	deleted, err := s.cartRepo.Delete(userID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotInCart
	}
	return nil
}

// ListMyCart 获取我的购物车菜谱列表
func (s *CartService) ListMyCart(userID int64, page, pageSize int) (*dto.RecipeListData, error) {
	skip := (page - 1) * pageSize
	recipeIDs, total, err := s.cartRepo.GetRecipeIDs(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.GetByIDsWithAuthor(recipeIDs)
	if err != nil {
		return nil, err
	}

	recipeMap := make(map[int64]int, len(recipes))
	for i := range recipes {
		recipeMap[recipes[i].ID] = i
	}

	items := make([]dto.RecipeInfo, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		if idx, ok := recipeMap[id]; ok {
			info := toRecipeInfo(&recipes[idx])
			info.IsInShoppingCart = true
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

// BuildShoppingList 生成用户的购物清单文本
// 聚合购物车中全部菜谱的食材用量，分组键 (名称, 计量单位)，按名称升序
func (s *CartService) BuildShoppingList(userID int64) (string, error) {
	entries, err := s.cartRepo.AggregateShoppingList(userID)
	if err != nil {
		return "", err
	}
	return RenderShoppingList(entries), nil
}

// RenderShoppingList 将聚合结果渲染为清单文本，每行一组
// 空结果输出单行占位文本而不是空文档
func RenderShoppingList(entries []repository.ShoppingListEntry) string {
	if len(entries) == 0 {
		return EmptyShoppingListLine
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s — %d %s", e.Name, e.Total, e.Unit))
	}
	return strings.Join(lines, "\n")
}
