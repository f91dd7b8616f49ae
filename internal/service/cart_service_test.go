package service

import (
	"testing"

	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddToCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, author.ID, "清蒸鱼", nil)

	svc := NewCartService(repository.NewCartRepository(db), repository.NewRecipeRepository(db))

	item, err := svc.AddToCart(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, item.ID)

	_, err = svc.AddToCart(user.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrAlreadyInCart)
}

func TestCartService_AddToCart_RecipeNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")

	svc := NewCartService(repository.NewCartRepository(db), repository.NewRecipeRepository(db))

	_, err := svc.AddToCart(user.ID, 99999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, author.ID, "清蒸鱼", nil)

	svc := NewCartService(repository.NewCartRepository(db), repository.NewRecipeRepository(db))

	_, err := svc.AddToCart(user.ID, recipe.ID)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveFromCart(user.ID, recipe.ID))

	// 再次移除同一条目是可见的失败
	err = svc.RemoveFromCart(user.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotInCart)
}

func TestCartService_BuildShoppingList_Aggregation(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	flour := seedIngredient(t, db, "Flour", "g")
	milk := seedIngredient(t, db, "Milk", "ml")
	egg := seedIngredient(t, db, "Egg", "pcs")

	pancakes := seedRecipe(t, db, author.ID, "Pancakes", map[int64]int64{
		flour.ID: 200,
		milk.ID:  300,
	})
	omelette := seedRecipe(t, db, author.ID, "Omelette", map[int64]int64{
		milk.ID: 50,
		egg.ID:  3,
	})

	svc := NewCartService(repository.NewCartRepository(db), repository.NewRecipeRepository(db))

	_, err := svc.AddToCart(user.ID, pancakes.ID)
	require.NoError(t, err)
	_, err = svc.AddToCart(user.ID, omelette.ID)
	require.NoError(t, err)

	list, err := svc.BuildShoppingList(user.ID)
	require.NoError(t, err)

	// 同名同单位食材合并用量，按名称升序
	expected := "Egg — 3 pcs\nFlour — 200 g\nMilk — 350 ml"
	assert.Equal(t, expected, list)
}

func TestCartService_BuildShoppingList_OrderIndependent(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	flour := seedIngredient(t, db, "Flour", "g")
	milk := seedIngredient(t, db, "Milk", "ml")

	r1 := seedRecipe(t, db, author.ID, "一号", map[int64]int64{flour.ID: 100, milk.ID: 200})
	r2 := seedRecipe(t, db, author.ID, "二号", map[int64]int64{flour.ID: 50})

	svc := NewCartService(repository.NewCartRepository(db), repository.NewRecipeRepository(db))

	// 先 r2 后 r1
	_, err := svc.AddToCart(user.ID, r2.ID)
	require.NoError(t, err)
	_, err = svc.AddToCart(user.ID, r1.ID)
	require.NoError(t, err)

	list, err := svc.BuildShoppingList(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flour — 150 g\nMilk — 200 ml", list)
}

func TestCartService_BuildShoppingList_SameNameDifferentUnit(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	sugarG := seedIngredient(t, db, "Sugar", "g")
	sugarTbsp := seedIngredient(t, db, "Sugar", "tbsp")

	recipe := seedRecipe(t, db, author.ID, "甜品", map[int64]int64{
		sugarG.ID:    100,
		sugarTbsp.ID: 2,
	})

	svc := NewCartService(repository.NewCartRepository(db), repository.NewRecipeRepository(db))

	_, err := svc.AddToCart(user.ID, recipe.ID)
	require.NoError(t, err)

	list, err := svc.BuildShoppingList(user.ID)
	require.NoError(t, err)

	// 单位不同不合并，各自成行
	assert.Equal(t, "Sugar — 100 g\nSugar — 2 tbsp", list)
}

func TestCartService_BuildShoppingList_Empty(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")

	svc := NewCartService(repository.NewCartRepository(db), repository.NewRecipeRepository(db))

	list, err := svc.BuildShoppingList(user.ID)
	require.NoError(t, err)
	assert.Equal(t, EmptyShoppingListLine, list)
}

func TestRenderShoppingList(t *testing.T) {
	entries := []repository.ShoppingListEntry{
		{Name: "Egg", Unit: "pcs", Total: 3},
		{Name: "Flour", Unit: "g", Total: 200},
	}
	assert.Equal(t, "Egg — 3 pcs\nFlour — 200 g", RenderShoppingList(entries))
	assert.Equal(t, EmptyShoppingListLine, RenderShoppingList(nil))
}
