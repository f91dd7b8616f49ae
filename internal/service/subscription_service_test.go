package service

import (
	"testing"

	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubscriptionService(db *gorm.DB) *SubscriptionService {
	return NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewUserRepository(db),
		repository.NewRecipeRepository(db),
	)
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	seedRecipe(t, db, author.ID, "红烧肉", nil)

	svc := newSubscriptionService(db)

	info, err := svc.Subscribe(user.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, info.Author.ID)
	assert.True(t, info.Author.IsSubscribed)
	assert.Equal(t, int64(1), info.RecipesCount)
}

func TestSubscriptionService_Subscribe_Self(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")

	svc := newSubscriptionService(db)

	_, err := svc.Subscribe(user.ID, user.ID)
	assert.ErrorIs(t, err, ErrCannotSubscribeSelf)
}

func TestSubscriptionService_Subscribe_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	svc := newSubscriptionService(db)

	_, err := svc.Subscribe(user.ID, author.ID)
	require.NoError(t, err)

	_, err = svc.Subscribe(user.ID, author.ID)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscriptionService_Subscribe_AuthorNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")

	svc := newSubscriptionService(db)

	_, err := svc.Subscribe(user.ID, 99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")

	svc := newSubscriptionService(db)

	_, err := svc.Subscribe(user.ID, author.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(user.ID, author.ID))

	// 重复取消是可见的失败
	err = svc.Unsubscribe(user.ID, author.ID)
	assert.ErrorIs(t, err, ErrNotSubscribed)

	ok, err := svc.IsSubscribed(user.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubscriptionService_ListSubscriptions(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	seedRecipe(t, db, bob.ID, "红烧肉", nil)
	seedRecipe(t, db, bob.ID, "清蒸鱼", nil)

	svc := newSubscriptionService(db)

	_, err := svc.Subscribe(user.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.Subscribe(user.ID, carol.ID)
	require.NoError(t, err)

	data, err := svc.ListSubscriptions(user.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	require.Len(t, data.Authors, 2)

	counts := map[int64]int64{}
	for _, item := range data.Authors {
		assert.True(t, item.Author.IsSubscribed)
		counts[item.Author.ID] = item.RecipesCount
	}
	assert.Equal(t, int64(2), counts[bob.ID])
	assert.Equal(t, int64(0), counts[carol.ID])
}

// 双向订阅是两条互不影响的关系
func TestSubscriptionService_MutualSubscription(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	svc := newSubscriptionService(db)

	_, err := svc.Subscribe(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.Subscribe(bob.ID, alice.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(alice.ID, bob.ID))

	ok, err := svc.IsSubscribed(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
