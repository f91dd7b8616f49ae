package repository

import (
	"kulina-go/internal/model"

	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Create 添加购物车条目，唯一约束兜底防并发重复
func (r *CartRepository) Create(userID, recipeID int64) (*model.ShoppingCartItem, error) {
	item := &model.ShoppingCartItem{UserID: userID, RecipeID: recipeID}
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除购物车条目，返回是否确实删除了行
func (r *CartRepository) Delete(userID, recipeID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.ShoppingCartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查购物车条目是否存在
func (r *CartRepository) Exists(userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.ShoppingCartItem{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

// GetRecipeIDs 获取用户购物车内的菜谱 ID 列表（分页）
func (r *CartRepository) GetRecipeIDs(userID int64, skip, limit int) ([]int64, int64, error) {
	query := r.db.Model(&model.ShoppingCartItem{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []int64
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Pluck("recipe_id", &ids).Error
	return ids, total, err
}

// BatchCheckInCart 批量查询购物车状态
func (r *CartRepository) BatchCheckInCart(userID int64, recipeIDs []int64) (map[int64]bool, error) {
	if len(recipeIDs) == 0 {
		return map[int64]bool{}, nil
	}

	var inCartIDs []int64
	err := r.db.Model(&model.ShoppingCartItem{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &inCartIDs).Error
	if err != nil {
		return nil, err
	}

	inCartSet := make(map[int64]bool, len(inCartIDs))
	for _, id := range inCartIDs {
		inCartSet[id] = true
	}

	result := make(map[int64]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		result[id] = inCartSet[id]
	}
	return result, nil
}

// ShoppingListEntry 购物清单聚合结果的一行
type ShoppingListEntry struct {
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Total int64  `json:"total"`
}

// AggregateShoppingList 聚合用户购物车中所有菜谱的食材用量
// 分组键为 (食材名称, 计量单位)，结果按名称升序，保证输出确定
func (r *CartRepository) AggregateShoppingList(userID int64) ([]ShoppingListEntry, error) {
	var entries []ShoppingListEntry
	err := r.db.Raw(`
		SELECT i.name AS name, i.measurement_unit AS unit, SUM(ri.amount) AS total
		FROM recipe_ingredients ri
		INNER JOIN ingredients i ON i.id = ri.ingredient_id
		INNER JOIN shopping_cart_items sc ON sc.recipe_id = ri.recipe_id
		WHERE sc.user_id = ?
		GROUP BY i.name, i.measurement_unit
		ORDER BY i.name ASC
	`, userID).Scan(&entries).Error
	return entries, err
}
