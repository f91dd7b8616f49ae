package service

import (
	"testing"

	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(
		repository.NewIngredientRepository(db),
		repository.NewTagRepository(db),
	)
}

func TestCatalogService_ListIngredients_Prefix(t *testing.T) {
	db := setupTestDB(t)
	seedIngredient(t, db, "Milk", "ml")
	seedIngredient(t, db, "Mint", "g")
	seedIngredient(t, db, "Flour", "g")

	svc := newCatalogService(db)

	items, err := svc.ListIngredients("mi")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "Mint", items[1].Name)

	all, err := svc.ListIngredients("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogService_GetIngredient_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.GetIngredient(99999)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestCatalogService_ListTags(t *testing.T) {
	db := setupTestDB(t)
	seedTag(t, db, "晚餐", "dinner")
	seedTag(t, db, "早餐", "breakfast")

	svc := newCatalogService(db)

	tags, err := svc.ListTags()
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}
