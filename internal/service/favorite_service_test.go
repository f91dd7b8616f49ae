package service

import (
	"testing"

	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteFixture(t *testing.T) (*FavoriteService, *repository.FavoriteRepository, int64, int64) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, author.ID, "红烧肉", nil)

	favoriteRepo := repository.NewFavoriteRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	return NewFavoriteService(favoriteRepo, recipeRepo), favoriteRepo, user.ID, recipe.ID
}

func TestFavoriteService_Favorite(t *testing.T) {
	svc, _, userID, recipeID := newFavoriteFixture(t)

	item, err := svc.Favorite(userID, recipeID)
	require.NoError(t, err)
	assert.Equal(t, recipeID, item.ID)
	assert.Equal(t, "红烧肉", item.Name)
}

func TestFavoriteService_Favorite_Duplicate(t *testing.T) {
	svc, _, userID, recipeID := newFavoriteFixture(t)

	_, err := svc.Favorite(userID, recipeID)
	require.NoError(t, err)

	_, err = svc.Favorite(userID, recipeID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)
}

func TestFavoriteService_Favorite_RecipeNotFound(t *testing.T) {
	svc, _, userID, _ := newFavoriteFixture(t)

	_, err := svc.Favorite(userID, 99999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestFavoriteService_Unfavorite(t *testing.T) {
	svc, favoriteRepo, userID, recipeID := newFavoriteFixture(t)

	_, err := svc.Favorite(userID, recipeID)
	require.NoError(t, err)

	require.NoError(t, svc.Unfavorite(userID, recipeID))

	exists, err := favoriteRepo.Exists(userID, recipeID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteService_Unfavorite_NotFavorited(t *testing.T) {
	svc, _, userID, recipeID := newFavoriteFixture(t)

	err := svc.Unfavorite(userID, recipeID)
	assert.ErrorIs(t, err, ErrNotFavorited)
}

func TestFavoriteService_FavoriteAgainAfterUnfavorite(t *testing.T) {
	svc, _, userID, recipeID := newFavoriteFixture(t)

	_, err := svc.Favorite(userID, recipeID)
	require.NoError(t, err)
	require.NoError(t, svc.Unfavorite(userID, recipeID))

	_, err = svc.Favorite(userID, recipeID)
	assert.NoError(t, err)
}

func TestFavoriteService_ListMyFavorites(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	r1 := seedRecipe(t, db, author.ID, "菜谱一", nil)
	r2 := seedRecipe(t, db, author.ID, "菜谱二", nil)

	svc := NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewRecipeRepository(db))

	_, err := svc.Favorite(user.ID, r1.ID)
	require.NoError(t, err)
	_, err = svc.Favorite(user.ID, r2.ID)
	require.NoError(t, err)

	data, err := svc.ListMyFavorites(user.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	assert.Len(t, data.Recipes, 2)
	for _, r := range data.Recipes {
		assert.True(t, r.IsFavorited)
	}
}
