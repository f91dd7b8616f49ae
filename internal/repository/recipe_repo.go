package repository

import (
	"kulina-go/internal/model"

	"gorm.io/gorm"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// GetByID 根据 ID 获取菜谱
func (r *RecipeRepository) GetByID(id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetDetail 根据 ID 获取菜谱（含作者、标签、食材明细）
func (r *RecipeRepository) GetDetail(id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetByIDsWithAuthor 批量查询菜谱（含作者），用于按外部排序回填
func (r *RecipeRepository) GetByIDsWithAuthor(ids []int64) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return []model.Recipe{}, nil
	}
	var recipes []model.Recipe
	err := r.db.Preload("Author").Where("id IN ?", ids).Find(&recipes).Error
	return recipes, err
}

// Create 创建菜谱及其食材明细、标签关联（单事务）
func (r *RecipeRepository) Create(recipe *model.Recipe, items []model.RecipeIngredient, tagIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].RecipeID = recipe.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return replaceTags(tx, recipe, tagIDs)
	})
}

// Update 更新菜谱并整体替换食材明细与标签关联（单事务）
// 旧的食材集合先删后插，避免出现半新半旧的状态
func (r *RecipeRepository) Update(recipe *model.Recipe, updates map[string]interface{}, items []model.RecipeIngredient, tagIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].RecipeID = recipe.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return replaceTags(tx, recipe, tagIDs)
	})
}

// Delete 删除菜谱及其派生行（单事务）
func (r *RecipeRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.ShoppingCartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.ShortLink{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Recipe{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.Recipe{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// RecipeFilter 菜谱列表筛选条件
type RecipeFilter struct {
	AuthorID       *int64
	TagSlug        string
	FavoritedBy    *int64
	InShoppingCart *int64
}

// List 菜谱列表查询（分页、筛选）
func (r *RecipeRepository) List(skip, limit int, filter *RecipeFilter) ([]model.Recipe, int64, error) {
	query := r.db.Model(&model.Recipe{})

	if filter != nil {
		if filter.AuthorID != nil {
			query = query.Where("author_id = ?", *filter.AuthorID)
		}
		if filter.TagSlug != "" {
			query = query.Where(
				"id IN (?)",
				r.db.Table("recipe_tags").
					Select("recipe_tags.recipe_id").
					Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
					Where("tags.slug = ?", filter.TagSlug),
			)
		}
		if filter.FavoritedBy != nil {
			query = query.Where(
				"id IN (?)",
				r.db.Model(&model.Favorite{}).Select("recipe_id").Where("user_id = ?", *filter.FavoritedBy),
			)
		}
		if filter.InShoppingCart != nil {
			query = query.Where(
				"id IN (?)",
				r.db.Model(&model.ShoppingCartItem{}).Select("recipe_id").Where("user_id = ?", *filter.InShoppingCart),
			)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// GetByIDsDetailed 批量查询菜谱（含作者、标签、食材明细），用于搜索结果回填
func (r *RecipeRepository) GetByIDsDetailed(ids []int64) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return []model.Recipe{}, nil
	}
	var recipes []model.Recipe
	err := r.db.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Where("id IN ?", ids).
		Find(&recipes).Error
	return recipes, err
}

// SearchByKeyword 按关键字在名称和正文上模糊搜索，搜索服务降级时使用
func (r *RecipeRepository) SearchByKeyword(keyword string, skip, limit int) ([]model.Recipe, int64, error) {
	pattern := "%" + keyword + "%"
	query := r.db.Model(&model.Recipe{}).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(text) LIKE LOWER(?)", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListByAuthor 某作者的全部菜谱（含明细），用于导出
func (r *RecipeRepository) ListByAuthor(authorID int64) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Where("author_id = ?", authorID).
		Order("id ASC").
		Find(&recipes).Error
	return recipes, err
}

// CountByAuthor 统计作者的菜谱数
func (r *RecipeRepository) CountByAuthor(authorID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// replaceTags 重建菜谱-标签关联
func replaceTags(tx *gorm.DB, recipe *model.Recipe, tagIDs []int64) error {
	if tagIDs == nil {
		return nil
	}
	var tags []model.Tag
	if len(tagIDs) > 0 {
		if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
			return err
		}
	}
	return tx.Model(recipe).Association("Tags").Replace(&tags)
}
