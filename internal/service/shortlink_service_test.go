package service

import (
	"fmt"
	"testing"

	"kulina-go/internal/model"
	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newShortLinkService(db *gorm.DB) *ShortLinkService {
	return NewShortLinkService(
		repository.NewShortLinkRepository(db),
		repository.NewRecipeRepository(db),
	)
}

func TestShortLinkService_GetOrCreateLink(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, author.ID, "红烧肉", nil)

	svc := newShortLinkService(db)

	data, err := svc.GetOrCreateLink(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, data.RecipeID)
	assert.Len(t, data.Code, 8)
	assert.LessOrEqual(t, len(data.Code), model.ShortLinkCodeMaxLength)
	assert.Equal(t, "http://127.0.0.1:8000/s/"+data.Code, data.ShortLink)
}

func TestShortLinkService_GetOrCreateLink_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, author.ID, "红烧肉", nil)

	svc := newShortLinkService(db)

	first, err := svc.GetOrCreateLink(recipe.ID)
	require.NoError(t, err)

	second, err := svc.GetOrCreateLink(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Code, second.Code)

	var count int64
	require.NoError(t, db.Model(&model.ShortLink{}).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestShortLinkService_GetOrCreateLink_DistinctCodes(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")

	svc := newShortLinkService(db)

	codes := make(map[string]bool)
	for i := 0; i < 20; i++ {
		recipe := seedRecipe(t, db, author.ID, fmt.Sprintf("菜谱%d", i), nil)
		data, err := svc.GetOrCreateLink(recipe.ID)
		require.NoError(t, err)
		assert.False(t, codes[data.Code], "短码 %s 重复", data.Code)
		codes[data.Code] = true
	}
}

func TestShortLinkService_GetOrCreateLink_RecipeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newShortLinkService(db)

	_, err := svc.GetOrCreateLink(99999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestShortLinkService_Resolve(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	recipe := seedRecipe(t, db, author.ID, "红烧肉", nil)

	svc := newShortLinkService(db)

	data, err := svc.GetOrCreateLink(recipe.ID)
	require.NoError(t, err)

	recipeID, err := svc.Resolve(data.Code)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, recipeID)
}

func TestShortLinkService_Resolve_Unknown(t *testing.T) {
	db := setupTestDB(t)
	svc := newShortLinkService(db)

	_, err := svc.Resolve("nosuchcd")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

// 短码撞车时换码重试，同码不会落两行
func TestShortLinkService_CodeCollisionRetries(t *testing.T) {
	db := setupTestDB(t)
	author := seedUser(t, db, "bob")
	occupied := seedRecipe(t, db, author.ID, "先占码", nil)
	recipe := seedRecipe(t, db, author.ID, "后来者", nil)

	// 预先占用一个短码，制造潜在冲突面
	require.NoError(t, db.Create(&model.ShortLink{RecipeID: occupied.ID, Code: "abcd1234"}).Error)

	svc := newShortLinkService(db)

	data, err := svc.GetOrCreateLink(recipe.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "abcd1234", data.Code)
}
