package repository

import (
	"kulina-go/internal/model"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// GetByID 根据 ID 查询食材
func (r *IngredientRepository) GetByID(id int64) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs 批量查询食材
func (r *IngredientRepository) GetByIDs(ids []int64) ([]model.Ingredient, error) {
	if len(ids) == 0 {
		return []model.Ingredient{}, nil
	}
	var ingredients []model.Ingredient
	err := r.db.Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

// List 食材列表，namePrefix 非空时按名称前缀过滤
func (r *IngredientRepository) List(namePrefix string) ([]model.Ingredient, error) {
	query := r.db.Model(&model.Ingredient{})
	if namePrefix != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", namePrefix+"%")
	}

	var ingredients []model.Ingredient
	err := query.Order("name ASC").Find(&ingredients).Error
	return ingredients, err
}

// Create 创建食材
func (r *IngredientRepository) Create(ingredient *model.Ingredient) error {
	return r.db.Create(ingredient).Error
}
