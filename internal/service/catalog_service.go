package service

import (
	"errors"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/repository"

	"gorm.io/gorm"
)

// CatalogService 食材与标签的只读目录
type CatalogService struct {
	ingredientRepo *repository.IngredientRepository
	tagRepo        *repository.TagRepository
}

func NewCatalogService(ingredientRepo *repository.IngredientRepository, tagRepo *repository.TagRepository) *CatalogService {
	return &CatalogService{ingredientRepo: ingredientRepo, tagRepo: tagRepo}
}

// ListIngredients 食材列表，namePrefix 非空时按名称前缀过滤
func (s *CatalogService) ListIngredients(namePrefix string) ([]dto.IngredientInfo, error) {
	ingredients, err := s.ingredientRepo.List(namePrefix)
	if err != nil {
		return nil, err
	}

	items := make([]dto.IngredientInfo, 0, len(ingredients))
	for _, ing := range ingredients {
		items = append(items, dto.IngredientInfo{
			ID:              ing.ID,
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
		})
	}
	return items, nil
}

// GetIngredient 获取单个食材
func (s *CatalogService) GetIngredient(id int64) (*dto.IngredientInfo, error) {
	ing, err := s.ingredientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &dto.IngredientInfo{
		ID:              ing.ID,
		Name:            ing.Name,
		MeasurementUnit: ing.MeasurementUnit,
	}, nil
}

// ListTags 标签列表
func (s *CatalogService) ListTags() ([]dto.TagInfo, error) {
	tags, err := s.tagRepo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.TagInfo, 0, len(tags))
	for _, t := range tags {
		items = append(items, dto.TagInfo{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug})
	}
	return items, nil
}
