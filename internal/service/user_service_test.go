package service

import (
	"testing"

	"kulina-go/internal/model"
	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewRecipeRepository(db),
		repository.NewSubscriptionRepository(db),
	)
}

func TestUserService_GetUser(t *testing.T) {
	db := setupTestDB(t)
	bob := seedUser(t, db, "bob")
	alice := seedUser(t, db, "alice")
	seedRecipe(t, db, bob.ID, "红烧肉", nil)
	require.NoError(t, db.Create(&model.Subscription{UserID: alice.ID, AuthorID: bob.ID}).Error)

	svc := newUserService(db)

	info, err := svc.GetUser(bob.ID, &alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.RecipesCount)
	assert.True(t, info.IsSubscribed)

	anon, err := svc.GetUser(bob.ID, nil)
	require.NoError(t, err)
	assert.False(t, anon.IsSubscribed)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.GetUser(99999, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Avatar(t *testing.T) {
	db := setupTestDB(t)
	bob := seedUser(t, db, "bob")

	svc := newUserService(db)

	// 初始未设置，读取方拿到 nil 而不是错误
	info, err := svc.GetUser(bob.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, info.Avatar)

	info, err = svc.SetAvatar(bob.ID, "https://cdn.example.com/a.png")
	require.NoError(t, err)
	require.NotNil(t, info.Avatar)
	assert.Equal(t, "https://cdn.example.com/a.png", *info.Avatar)

	require.NoError(t, svc.DeleteAvatar(bob.ID))

	info, err = svc.GetUser(bob.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, info.Avatar)
}
