package service

import (
	"fmt"
	"testing"

	"kulina-go/internal/config"
	"kulina-go/internal/model"
	"kulina-go/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	_ = logger.Init("error", "console", "stdout", "")
	config.Set(&config.Config{
		App: config.AppConfig{
			Name:    "kulina-go-test",
			BaseURL: "http://127.0.0.1:8000",
		},
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 1,
		},
		ShortLink: config.ShortLinkConfig{
			CodeLength:  8,
			MaxAttempts: 10,
		},
	})
}

// setupTestDB 为每个测试建一个独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Ingredient{},
		&model.Tag{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.Favorite{},
		&model.ShoppingCartItem{},
		&model.Subscription{},
		&model.ShortLink{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, userName string) *model.User {
	t.Helper()
	user := &model.User{
		UserName: userName,
		Email:    userName + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedIngredient(t *testing.T, db *gorm.DB, name, unit string) *model.Ingredient {
	t.Helper()
	ing := &model.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ing).Error)
	return ing
}

func seedTag(t *testing.T, db *gorm.DB, name, slug string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: name, Slug: slug, Color: "#49B64E"}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// seedRecipe 创建菜谱及其食材明细，items 为 食材ID -> 用量
func seedRecipe(t *testing.T, db *gorm.DB, authorID int64, name string, items map[int64]int64) *model.Recipe {
	t.Helper()
	recipe := &model.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        "做法描述",
		CookingTime: 30,
	}
	require.NoError(t, db.Create(recipe).Error)

	for ingredientID, amount := range items {
		require.NoError(t, db.Create(&model.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ingredientID,
			Amount:       amount,
		}).Error)
	}
	return recipe
}
