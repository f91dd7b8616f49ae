package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"kulina-go/internal/api/dto"
	infraES "kulina-go/internal/infra/elasticsearch"
	"kulina-go/internal/model"
	"kulina-go/internal/repository"
	"kulina-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	searchSourceES = "es"
	searchSourceDB = "db"
)

// RecipeDocument 菜谱在 Elasticsearch 中的文档结构
type RecipeDocument struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Name        string    `json:"name"`
	Text        string    `json:"text"`
	Tags        []string  `json:"tags"`
	CookingTime int       `json:"cooking_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type SearchService struct {
	recipeRepo   *repository.RecipeRepository
	favoriteRepo *repository.FavoriteRepository
	cartRepo     *repository.CartRepository
}

func NewSearchService(
	recipeRepo *repository.RecipeRepository,
	favoriteRepo *repository.FavoriteRepository,
	cartRepo *repository.CartRepository,
) *SearchService {
	return &SearchService{
		recipeRepo:   recipeRepo,
		favoriteRepo: favoriteRepo,
		cartRepo:     cartRepo,
	}
}

// SearchRecipes 搜索菜谱，优先走 Elasticsearch，不可用时降级为数据库模糊查询
func (s *SearchService) SearchRecipes(ctx context.Context, req *dto.SearchRecipeRequest, viewerID *int64) (*dto.SearchRecipeData, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	skip := (page - 1) * pageSize

	if infraES.Get() != nil {
		data, err := s.searchViaES(ctx, req.Keyword, page, pageSize, skip, viewerID)
		if err == nil {
			return data, nil
		}
		logger.Warn("Elasticsearch search failed, falling back to database",
			zap.String("keyword", req.Keyword),
			zap.Error(err),
		)
	}

	return s.searchViaDB(req.Keyword, page, pageSize, skip, viewerID)
}

func (s *SearchService) searchViaES(ctx context.Context, keyword string, page, pageSize, skip int, viewerID *int64) (*dto.SearchRecipeData, error) {
	query := map[string]interface{}{
		"from": skip,
		"size": pageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keyword,
				"fields": []string{"name^3", "text"},
			},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := infraES.Search(ctx, infraES.RecipesIndexName(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("elasticsearch search error: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode elasticsearch response: %w", err)
	}

	recipeIDs := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		recipeIDs = append(recipeIDs, id)
	}

	recipes, err := s.recipeRepo.GetByIDsDetailed(recipeIDs)
	if err != nil {
		return nil, err
	}

	// 按 ES 相关度顺序回填
	recipeMap := make(map[int64]int, len(recipes))
	for i := range recipes {
		recipeMap[recipes[i].ID] = i
	}
	ordered := make([]model.Recipe, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		if idx, ok := recipeMap[id]; ok {
			ordered = append(ordered, recipes[idx])
		}
	}

	items, err := s.buildRecipeInfos(ordered, viewerID)
	if err != nil {
		return nil, err
	}

	total := result.Hits.Total.Value
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &dto.SearchRecipeData{
		Recipes:    items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Source:     searchSourceES,
	}, nil
}

func (s *SearchService) searchViaDB(keyword string, page, pageSize, skip int, viewerID *int64) (*dto.SearchRecipeData, error) {
	recipes, total, err := s.recipeRepo.SearchByKeyword(keyword, skip, pageSize)
	if err != nil {
		return nil, err
	}

	items, err := s.buildRecipeInfos(recipes, viewerID)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &dto.SearchRecipeData{
		Recipes:    items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Source:     searchSourceDB,
	}, nil
}

func (s *SearchService) buildRecipeInfos(recipes []model.Recipe, viewerID *int64) ([]dto.RecipeInfo, error) {
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
	return items, nil
}

// SyncRecipeToES 将菜谱同步到 Elasticsearch，worker 消费变更事件后调用
func (s *SearchService) SyncRecipeToES(ctx context.Context, recipeID int64) error {
	recipe, err := s.recipeRepo.GetDetail(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 事件送达前菜谱已被删除，按删除处理
			return s.DeleteRecipeFromES(ctx, recipeID)
		}
		return err
	}

	tagSlugs := make([]string, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tagSlugs = append(tagSlugs, t.Slug)
	}

	doc := RecipeDocument{
		ID:          recipe.ID,
		AuthorID:    recipe.AuthorID,
		AuthorName:  recipe.Author.UserName,
		Name:        recipe.Name,
		Text:        recipe.Text,
		Tags:        tagSlugs,
		CookingTime: recipe.CookingTime,
		CreatedAt:   recipe.CreatedAt,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal recipe document: %w", err)
	}

	resp, err := infraES.Index(ctx, infraES.RecipesIndexName(), strconv.FormatInt(recipeID, 10), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index recipe document: %s", resp.String())
	}

	logger.Info("Recipe synced to Elasticsearch", zap.Int64("recipe_id", recipeID))
	return nil
}

// DeleteRecipeFromES 从 Elasticsearch 删除菜谱文档
func (s *SearchService) DeleteRecipeFromES(ctx context.Context, recipeID int64) error {
	resp, err := infraES.Delete(ctx, infraES.RecipesIndexName(), strconv.FormatInt(recipeID, 10))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 404 说明文档本就不在索引里，删除目标已达成
	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete recipe document: %s", resp.String())
	}

	logger.Info("Recipe removed from Elasticsearch", zap.Int64("recipe_id", recipeID))
	return nil
}
