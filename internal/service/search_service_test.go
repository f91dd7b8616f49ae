package service

import (
	"context"
	"testing"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSearchService(db *gorm.DB) *SearchService {
	return NewSearchService(
		repository.NewRecipeRepository(db),
		repository.NewFavoriteRepository(db),
		repository.NewCartRepository(db),
	)
}

// ES 客户端未初始化时走数据库模糊查询
func TestSearchService_FallbackToDB(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	seedRecipe(t, db, author.ID, "Borscht with beef", nil)
	seedRecipe(t, db, author.ID, "Pancakes", nil)

	svc := newSearchService(db)

	data, err := svc.SearchRecipes(context.Background(), &dto.SearchRecipeRequest{Keyword: "borscht"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "db", data.Source)
	assert.Equal(t, int64(1), data.Total)
	require.Len(t, data.Recipes, 1)
	assert.Equal(t, "Borscht with beef", data.Recipes[0].Name)
}

func TestSearchService_MatchesRecipeText(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, author.ID, "无名菜", nil)
	require.NoError(t, db.Model(recipe).Update("text", "炖煮两小时后加入土豆").Error)

	svc := newSearchService(db)

	data, err := svc.SearchRecipes(context.Background(), &dto.SearchRecipeRequest{Keyword: "土豆"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Total)
}

func TestSearchService_NoMatches(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	seedRecipe(t, db, author.ID, "Pancakes", nil)

	svc := newSearchService(db)

	data, err := svc.SearchRecipes(context.Background(), &dto.SearchRecipeRequest{Keyword: "sushi"}, nil)
	require.NoError(t, err)
	assert.Zero(t, data.Total)
	assert.Empty(t, data.Recipes)
}
