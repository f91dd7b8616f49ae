package service

import (
	"testing"

	"kulina-go/internal/api/dto"
	"kulina-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(userName string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		UserName: userName,
		Email:    userName + "@example.com",
		Password: "secret-password",
	}
}

func TestAuthService_Register(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	user, err := svc.Register(registerRequest("alice"))
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.NotZero(t, user.ID)
}

func TestAuthService_Register_DuplicateUserName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Register(registerRequest("alice"))
	require.NoError(t, err)

	req := registerRequest("alice")
	req.Email = "other@example.com"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrUserNameExists)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Register(registerRequest("alice"))
	require.NoError(t, err)

	req := registerRequest("alice2")
	req.Email = "alice@example.com"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Register(registerRequest("alice"))
	require.NoError(t, err)

	data, err := svc.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "bearer", data.TokenType)
	assert.Equal(t, "alice", data.User.UserName)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Register(registerRequest("alice"))
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	// 不暴露邮箱是否存在
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
