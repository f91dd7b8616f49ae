package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/config"
	infraKafka "kulina-go/internal/infra/kafka"
	"kulina-go/internal/model"
	"kulina-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound     = errors.New("菜谱不存在")
	ErrNotRecipeAuthor    = errors.New("只有作者才能修改或删除菜谱")
	ErrIngredientNotFound = errors.New("引用的食材不存在")
	ErrTagNotFound        = errors.New("引用的标签不存在")
)

type RecipeService struct {
	recipeRepo     *repository.RecipeRepository
	ingredientRepo *repository.IngredientRepository
	tagRepo        *repository.TagRepository
	favoriteRepo   *repository.FavoriteRepository
	cartRepo       *repository.CartRepository
}

func NewRecipeService(
	recipeRepo *repository.RecipeRepository,
	ingredientRepo *repository.IngredientRepository,
	tagRepo *repository.TagRepository,
	favoriteRepo *repository.FavoriteRepository,
	cartRepo *repository.CartRepository,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		tagRepo:        tagRepo,
		favoriteRepo:   favoriteRepo,
		cartRepo:       cartRepo,
	}
}

// Create 创建菜谱
func (s *RecipeService) Create(authorID int64, req *dto.RecipeWriteRequest) (*dto.RecipeInfo, error) {
	if errs := ValidateRecipeWrite(req); len(errs) > 0 {
		return nil, errs
	}
	if err := s.checkReferences(req); err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	items := buildIngredientItems(req.Ingredients)

	if err := s.recipeRepo.Create(recipe, items, req.TagIDs); err != nil {
		return nil, err
	}

	s.publishEvent(recipe.ID, infraKafka.RecipeActionCreated)

	return s.GetDetail(recipe.ID, &authorID)
}

// Update 更新菜谱，整体替换食材集合
func (s *RecipeService) Update(userID, recipeID int64, req *dto.RecipeWriteRequest) (*dto.RecipeInfo, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrNotRecipeAuthor
	}

	if errs := ValidateRecipeWrite(req); len(errs) > 0 {
		return nil, errs
	}
	if err := s.checkReferences(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         req.Name,
		"text":         req.Text,
		"cooking_time": req.CookingTime,
	}
	items := buildIngredientItems(req.Ingredients)

	if err := s.recipeRepo.Update(recipe, updates, items, req.TagIDs); err != nil {
		return nil, err
	}

	s.publishEvent(recipeID, infraKafka.RecipeActionUpdated)

	return s.GetDetail(recipeID, &userID)
}

// Delete 删除菜谱
func (s *RecipeService) Delete(userID, recipeID int64) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID != userID {
		return ErrNotRecipeAuthor
	}

	if err := s.recipeRepo.Delete(recipeID); err != nil {
		return err
	}

	s.publishEvent(recipeID, infraKafka.RecipeActionDeleted)
	return nil
}

// GetDetail 获取菜谱详情，viewerID 非空时附带收藏/购物车状态
func (s *RecipeService) GetDetail(recipeID int64, viewerID *int64) (*dto.RecipeInfo, error) {
	recipe, err := s.recipeRepo.GetDetail(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	info := toRecipeInfo(recipe)
	if viewerID != nil {
		info.IsFavorited, _ = s.favoriteRepo.Exists(*viewerID, recipeID)
		info.IsInShoppingCart, _ = s.cartRepo.Exists(*viewerID, recipeID)
	}
	return info, nil
}

// List 菜谱列表（分页、筛选）
func (s *RecipeService) List(page, pageSize int, filter *repository.RecipeFilter, viewerID *int64) (*dto.RecipeListData, error) {
	skip := (page - 1) * pageSize
	recipes, total, err := s.recipeRepo.List(skip, pageSize, filter)
	if err != nil {
		return nil, err
	}
	return s.buildRecipeListData(recipes, total, page, pageSize, viewerID)
}

// ExportCSV 导出作者自己的全部菜谱为 CSV
func (s *RecipeService) ExportCSV(authorID int64) ([]byte, error) {
	recipes, err := s.recipeRepo.ListByAuthor(authorID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "name", "cooking_time", "tags", "ingredients"}); err != nil {
		return nil, err
	}
	for i := range recipes {
		r := &recipes[i]

		tagSlugs := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			tagSlugs = append(tagSlugs, t.Slug)
		}

		items := make([]string, 0, len(r.Ingredients))
		for _, ri := range r.Ingredients {
			items = append(items, fmt.Sprintf("%s:%d%s",
				ri.Ingredient.Name, ri.Amount, ri.Ingredient.MeasurementUnit))
		}

		record := []string{
			fmt.Sprintf("%d", r.ID),
			r.Name,
			fmt.Sprintf("%d", r.CookingTime),
			strings.Join(tagSlugs, ","),
			strings.Join(items, " | "),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// checkReferences 校验请求引用的食材/标签都存在
func (s *RecipeService) checkReferences(req *dto.RecipeWriteRequest) error {
	ingredientIDs := make([]int64, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		ingredientIDs = append(ingredientIDs, item.ID)
	}
	ingredients, err := s.ingredientRepo.GetByIDs(ingredientIDs)
	if err != nil {
		return err
	}
	if len(ingredients) != len(ingredientIDs) {
		return ErrIngredientNotFound
	}

	if len(req.TagIDs) > 0 {
		tags, err := s.tagRepo.GetByIDs(req.TagIDs)
		if err != nil {
			return err
		}
		if len(tags) != len(req.TagIDs) {
			return ErrTagNotFound
		}
	}
	return nil
}

// publishEvent 发布菜谱变更事件，失败不阻塞主流程
func (s *RecipeService) publishEvent(recipeID int64, action string) {
	topic := config.GetKafka().Topics["recipe_events"]
	_ = infraKafka.SendRecipeEvent(context.Background(), topic, &infraKafka.RecipeEvent{
		RecipeID: recipeID,
		Action:   action,
	})
}

func (s *RecipeService) buildRecipeListData(recipes []model.Recipe, total int64, page, pageSize int, viewerID *int64) (*dto.RecipeListData, error) {
	recipeIDs := make([]int64, 0, len(recipes))
	for i := range recipes {
		recipeIDs = append(recipeIDs, recipes[i].ID)
	}

	favStatus := map[int64]bool{}
	cartStatus := map[int64]bool{}
	if viewerID != nil && len(recipeIDs) > 0 {
		var err error
		favStatus, err = s.favoriteRepo.BatchCheckFavorited(*viewerID, recipeIDs)
		if err != nil {
			return nil, err
		}
		cartStatus, err = s.cartRepo.BatchCheckInCart(*viewerID, recipeIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.RecipeInfo, 0, len(recipes))
	for i := range recipes {
		info := toRecipeInfo(&recipes[i])
		info.IsFavorited = favStatus[recipes[i].ID]
		info.IsInShoppingCart = cartStatus[recipes[i].ID]
		items = append(items, *info)
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

func buildIngredientItems(inputs []dto.RecipeIngredientInput) []model.RecipeIngredient {
	items := make([]model.RecipeIngredient, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, model.RecipeIngredient{
			IngredientID: in.ID,
			Amount:       in.Amount,
		})
	}
	return items
}

func toRecipeInfo(r *model.Recipe) *dto.RecipeInfo {
	tags := make([]dto.TagInfo, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, dto.TagInfo{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug})
	}

	ingredients := make([]dto.RecipeIngredientInfo, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		ingredients = append(ingredients, dto.RecipeIngredientInfo{
			ID:              ri.IngredientID,
			Name:            ri.Ingredient.Name,
			MeasurementUnit: ri.Ingredient.MeasurementUnit,
			Amount:          ri.Amount,
		})
	}

	return &dto.RecipeInfo{
		ID:          r.ID,
		Author:      *toUserInfo(&r.Author),
		Name:        r.Name,
		Text:        r.Text,
		CookingTime: r.CookingTime,
		Tags:        tags,
		Ingredients: ingredients,
		CreatedAt:   r.CreatedAt,
	}
}

func toRecipeMinified(r *model.Recipe) *dto.RecipeMinified {
	return &dto.RecipeMinified{
		ID:          r.ID,
		Name:        r.Name,
		CookingTime: r.CookingTime,
	}
}
