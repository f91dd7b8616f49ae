package repository

import (
	"kulina-go/internal/model"

	"gorm.io/gorm"
)

type ShortLinkRepository struct {
	db *gorm.DB
}

func NewShortLinkRepository(db *gorm.DB) *ShortLinkRepository {
	return &ShortLinkRepository{db: db}
}

// GetByRecipeID 查询菜谱已有的短链接
func (r *ShortLinkRepository) GetByRecipeID(recipeID int64) (*model.ShortLink, error) {
	var link model.ShortLink
	if err := r.db.Where("recipe_id = ?", recipeID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByCode 根据短码查询短链接
func (r *ShortLinkRepository) GetByCode(code string) (*model.ShortLink, error) {
	var link model.ShortLink
	if err := r.db.Where("code = ?", code).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Create 插入短链接记录
// recipe_id 与 code 各自的唯一约束是并发下的权威保障，
// 冲突由调用方根据 gorm.ErrDuplicatedKey 处理
func (r *ShortLinkRepository) Create(recipeID int64, code string) (*model.ShortLink, error) {
	link := &model.ShortLink{RecipeID: recipeID, Code: code}
	if err := r.db.Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}
