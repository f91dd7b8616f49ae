package service

import (
	"strings"
	"testing"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/model"
	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRecipeService(db *gorm.DB) *RecipeService {
	return NewRecipeService(
		repository.NewRecipeRepository(db),
		repository.NewIngredientRepository(db),
		repository.NewTagRepository(db),
		repository.NewFavoriteRepository(db),
		repository.NewCartRepository(db),
	)
}

func TestRecipeService_Create(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "Flour", "g")
	tag := seedTag(t, db, "早餐", "breakfast")

	svc := newRecipeService(db)

	info, err := svc.Create(author.ID, &dto.RecipeWriteRequest{
		Name:        "Pancakes",
		Text:        "和面，煎",
		CookingTime: 20,
		Ingredients: []dto.RecipeIngredientInput{{ID: flour.ID, Amount: 200}},
		TagIDs:      []int64{tag.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", info.Name)
	assert.Equal(t, author.ID, info.Author.ID)
	require.Len(t, info.Ingredients, 1)
	assert.Equal(t, int64(200), info.Ingredients[0].Amount)
	assert.Equal(t, "g", info.Ingredients[0].MeasurementUnit)
	require.Len(t, info.Tags, 1)
	assert.Equal(t, "breakfast", info.Tags[0].Slug)
}

func TestRecipeService_Create_Invalid(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")

	svc := newRecipeService(db)

	_, err := svc.Create(author.ID, &dto.RecipeWriteRequest{
		Name:        "坏菜谱",
		Text:        "x",
		CookingTime: 0,
		Ingredients: nil,
	})
	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 2)
}

func TestRecipeService_Create_UnknownIngredient(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")

	svc := newRecipeService(db)

	_, err := svc.Create(author.ID, &dto.RecipeWriteRequest{
		Name:        "坏菜谱",
		Text:        "x",
		CookingTime: 10,
		Ingredients: []dto.RecipeIngredientInput{{ID: 99999, Amount: 1}},
	})
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestRecipeService_Update_ReplacesIngredients(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "Flour", "g")
	milk := seedIngredient(t, db, "Milk", "ml")

	svc := newRecipeService(db)

	info, err := svc.Create(author.ID, &dto.RecipeWriteRequest{
		Name:        "Pancakes",
		Text:        "v1",
		CookingTime: 20,
		Ingredients: []dto.RecipeIngredientInput{{ID: flour.ID, Amount: 200}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(author.ID, info.ID, &dto.RecipeWriteRequest{
		Name:        "Pancakes v2",
		Text:        "v2",
		CookingTime: 25,
		Ingredients: []dto.RecipeIngredientInput{{ID: milk.ID, Amount: 300}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pancakes v2", updated.Name)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, milk.ID, updated.Ingredients[0].ID)

	// 旧的食材明细被整体替换，不残留
	var count int64
	require.NoError(t, db.Model(&model.RecipeIngredient{}).Where("recipe_id = ?", info.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecipeService_Update_NotAuthor(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	other := seedUser(t, db, "mallory")
	flour := seedIngredient(t, db, "Flour", "g")
	recipe := seedRecipe(t, db, author.ID, "红烧肉", map[int64]int64{flour.ID: 100})

	svc := newRecipeService(db)

	_, err := svc.Update(other.ID, recipe.ID, &dto.RecipeWriteRequest{
		Name:        "篡改",
		Text:        "x",
		CookingTime: 10,
		Ingredients: []dto.RecipeIngredientInput{{ID: flour.ID, Amount: 1}},
	})
	assert.ErrorIs(t, err, ErrNotRecipeAuthor)
}

func TestRecipeService_Delete_Cascades(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	user := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "Flour", "g")
	recipe := seedRecipe(t, db, author.ID, "红烧肉", map[int64]int64{flour.ID: 100})

	// 派生行：收藏、购物车、短链接
	require.NoError(t, db.Create(&model.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error)
	require.NoError(t, db.Create(&model.ShoppingCartItem{UserID: user.ID, RecipeID: recipe.ID}).Error)
	require.NoError(t, db.Create(&model.ShortLink{RecipeID: recipe.ID, Code: "abcd1234"}).Error)

	svc := newRecipeService(db)
	require.NoError(t, svc.Delete(author.ID, recipe.ID))

	for _, m := range []interface{}{
		&model.RecipeIngredient{}, &model.Favorite{}, &model.ShoppingCartItem{}, &model.ShortLink{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
		assert.Zero(t, count)
	}

	_, err := svc.GetDetail(recipe.ID, nil)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeService_Delete_NotAuthor(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	other := seedUser(t, db, "mallory")
	recipe := seedRecipe(t, db, author.ID, "红烧肉", nil)

	svc := newRecipeService(db)
	assert.ErrorIs(t, svc.Delete(other.ID, recipe.ID), ErrNotRecipeAuthor)
}

func TestRecipeService_GetDetail_ViewerFlags(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	user := seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, author.ID, "红烧肉", nil)

	require.NoError(t, db.Create(&model.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error)

	svc := newRecipeService(db)

	info, err := svc.GetDetail(recipe.ID, &user.ID)
	require.NoError(t, err)
	assert.True(t, info.IsFavorited)
	assert.False(t, info.IsInShoppingCart)

	anon, err := svc.GetDetail(recipe.ID, nil)
	require.NoError(t, err)
	assert.False(t, anon.IsFavorited)
}

func TestRecipeService_List_FilterByAuthor(t *testing.T) {
	db := setupTestDB(t)
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	seedRecipe(t, db, bob.ID, "一号", nil)
	seedRecipe(t, db, bob.ID, "二号", nil)
	seedRecipe(t, db, carol.ID, "三号", nil)

	svc := newRecipeService(db)

	data, err := svc.List(1, 10, &repository.RecipeFilter{AuthorID: &bob.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	for _, r := range data.Recipes {
		assert.Equal(t, bob.ID, r.Author.ID)
	}
}

func TestRecipeService_ExportCSV(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "Flour", "g")
	seedRecipe(t, db, author.ID, "Pancakes", map[int64]int64{flour.ID: 200})

	svc := newRecipeService(db)

	data, err := svc.ExportCSV(author.ID)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,cooking_time,tags,ingredients", lines[0])
	assert.Contains(t, lines[1], "Pancakes")
	assert.Contains(t, lines[1], "Flour:200g")
}
